package solar

import (
	"testing"
	"time"
)

func TestPreciseMidLatitude(t *testing.T) {
	loc, err := time.LoadLocation("America/Denver")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	d := Date{2025, time.March, 7}

	ev := Precise{}.Events(d, 37.8714, -109.3425, loc)
	if !ev.Rise.Before(ev.Set) {
		t.Fatalf("rise %v not before set %v", ev.Rise, ev.Set)
	}
	if got := DateOf(ev.Rise); got != d {
		t.Fatalf("rise date = %v, want %v", got, d)
	}
	if ev.Rise.Location() != loc {
		t.Fatalf("rise location = %v, want %v", ev.Rise.Location(), loc)
	}
	// early March at 38N, a rough sanity window is enough here
	if h := ev.Rise.Hour(); h < 5 || h > 8 {
		t.Fatalf("rise hour = %d, expected morning", h)
	}
	if h := ev.Set.Hour(); h < 16 || h > 19 {
		t.Fatalf("set hour = %d, expected evening", h)
	}
}

func TestPrecisePolarNightFallsBack(t *testing.T) {
	// Svalbard in midwinter has no sunrise, expect the fixed pair
	d := Date{2025, time.January, 5}
	want := Fallback(d, time.UTC)

	ev := Precise{}.Events(d, 78.2232, 15.6267, time.UTC)
	if !ev.Rise.Equal(want.Rise) || !ev.Set.Equal(want.Set) {
		t.Fatalf("polar night = %v/%v, want fallback %v/%v", ev.Rise, ev.Set, want.Rise, want.Set)
	}
}
