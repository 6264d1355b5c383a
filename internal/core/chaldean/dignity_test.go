package chaldean

import "testing"

func TestDignityOf_Table(t *testing.T) {
	tests := []struct {
		name   string
		planet Planet
		sign   string
		want   Dignity
	}{
		{name: "sun rules leo", planet: Sun, sign: "Leo", want: DignityRulership},
		{name: "sun detriment aquarius", planet: Sun, sign: "Aquarius", want: DignityDetriment},
		{name: "sun none in gemini", planet: Sun, sign: "Gemini", want: DignityNone},
		{name: "sun exalted aries", planet: Sun, sign: "Aries", want: DignityExaltation},
		{name: "sun fall libra", planet: Sun, sign: "Libra", want: DignityFall},
		{name: "mercury rules both signs", planet: Mercury, sign: "Virgo", want: DignityRulership},
		{name: "mercury rules gemini too", planet: Mercury, sign: "Gemini", want: DignityRulership},
		{name: "moon fall scorpio", planet: Moon, sign: "Scorpio", want: DignityFall},
		{name: "saturn detriment cancer", planet: Saturn, sign: "Cancer", want: DignityDetriment},
		{name: "jupiter exalted cancer", planet: Jupiter, sign: "Cancer", want: DignityExaltation},
		{name: "lowercase sign is canonicalized", planet: Sun, sign: "leo", want: DignityRulership},
		{name: "shouty sign is canonicalized", planet: Mars, sign: "ARIES", want: DignityRulership},
		{name: "unknown sign is none", planet: Sun, sign: "Ophiuchus", want: DignityNone},
		{name: "empty sign is none", planet: Sun, sign: "", want: DignityNone},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := DignityOf(tc.planet, tc.sign); got != tc.want {
				t.Fatalf("DignityOf(%v, %q) = %q, want %q", tc.planet, tc.sign, got, tc.want)
			}
		})
	}
}

// the tables overlap in exactly one place: Mercury both rules and is exalted
// in Virgo. Every other planet x sign pair matches at most one class, and
// DignityOf resolves the Mercury overlap to rulership by checking it first
func TestDignityTablesOverlapOnlyMercuryVirgo(t *testing.T) {
	for _, p := range Order {
		for _, sign := range Signs {
			matches := 0
			for _, s := range rulerships[p] {
				if s == sign {
					matches++
				}
			}
			if exaltations[p] == sign {
				matches++
			}
			for _, s := range detriments[p] {
				if s == sign {
					matches++
				}
			}
			if falls[p] == sign {
				matches++
			}
			if p == Mercury && sign == "Virgo" {
				if matches != 2 {
					t.Fatalf("mercury in Virgo should match rulership and exaltation, got %d matches", matches)
				}
				continue
			}
			if matches > 1 {
				t.Fatalf("planet %v sign %s matches %d dignity tables", p, sign, matches)
			}
		}
	}

	if got := DignityOf(Mercury, "Virgo"); got != DignityRulership {
		t.Fatalf("DignityOf(mercury, Virgo) = %q, want rulership to win the overlap", got)
	}
}

func TestCanonicalSign(t *testing.T) {
	if got, ok := CanonicalSign("  sagittarius "); !ok || got != "Sagittarius" {
		t.Fatalf("CanonicalSign(sagittarius) = %q, %v", got, ok)
	}
	if _, ok := CanonicalSign("notasign"); ok {
		t.Fatalf("CanonicalSign(notasign) should not resolve")
	}
}
