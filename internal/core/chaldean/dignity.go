package chaldean

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Dignity classifies a planet's essential strength in a zodiac sign
type Dignity string

// Dignity classes, DignityNone means the sign carries no special dignity
const (
	DignityRulership  Dignity = "rulership"
	DignityExaltation Dignity = "exaltation"
	DignityDetriment  Dignity = "detriment"
	DignityFall       Dignity = "fall"
	DignityNone       Dignity = ""
)

// Signs lists the twelve zodiac signs in canonical form
var Signs = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// fixed dignity tables, detriments mirror rulerships and falls mirror
// exaltations across the zodiac

var rulerships = map[Planet][]string{
	Sun:     {"Leo"},
	Moon:    {"Cancer"},
	Mercury: {"Gemini", "Virgo"},
	Venus:   {"Taurus", "Libra"},
	Mars:    {"Aries", "Scorpio"},
	Jupiter: {"Sagittarius", "Pisces"},
	Saturn:  {"Capricorn", "Aquarius"},
}

var exaltations = map[Planet]string{
	Sun:     "Aries",
	Moon:    "Taurus",
	Mercury: "Virgo",
	Venus:   "Pisces",
	Mars:    "Capricorn",
	Jupiter: "Cancer",
	Saturn:  "Libra",
}

var detriments = map[Planet][]string{
	Sun:     {"Aquarius"},
	Moon:    {"Capricorn"},
	Mercury: {"Sagittarius", "Pisces"},
	Venus:   {"Aries", "Scorpio"},
	Mars:    {"Libra", "Taurus"},
	Jupiter: {"Gemini", "Virgo"},
	Saturn:  {"Cancer", "Leo"},
}

var falls = map[Planet]string{
	Sun:     "Libra",
	Moon:    "Scorpio",
	Mercury: "Pisces",
	Venus:   "Virgo",
	Mars:    "Cancer",
	Jupiter: "Capricorn",
	Saturn:  "Aries",
}

var signCaser = cases.Title(language.English)

// CanonicalSign normalizes a caller-supplied sign name to its canonical form
// ("leo" -> "Leo"), returning ok=false when the name is not a zodiac sign
func CanonicalSign(s string) (string, bool) {
	c := signCaser.String(strings.ToLower(strings.TrimSpace(s)))
	for _, sign := range Signs {
		if sign == c {
			return c, true
		}
	}
	return "", false
}

// DignityOf classifies the dignity of p in the given sign
// The sign is canonicalized first, an unknown sign or a sign with no table
// entry for p yields DignityNone, this is a lookup, never an error
func DignityOf(p Planet, sign string) Dignity {
	c, ok := CanonicalSign(sign)
	if !ok {
		return DignityNone
	}
	for _, s := range rulerships[p] {
		if s == c {
			return DignityRulership
		}
	}
	if exaltations[p] == c {
		return DignityExaltation
	}
	for _, s := range detriments[p] {
		if s == c {
			return DignityDetriment
		}
	}
	if falls[p] == c {
		return DignityFall
	}
	return DignityNone
}
