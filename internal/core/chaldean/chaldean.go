// Package chaldean holds the fixed planetary tables used by the hour engine
// The Chaldean order and the weekday ruler table are historical constants
// and must never be reordered, every downstream hour assignment depends on them
package chaldean

import (
	"strings"
	"time"

	perr "almanac/internal/platform/errors"
)

// Planet identifies one of the seven classical planets
// the lowercase string form doubles as the wire representation
type Planet string

// The seven classical planets
const (
	Saturn  Planet = "saturn"
	Jupiter Planet = "jupiter"
	Mars    Planet = "mars"
	Sun     Planet = "sun"
	Venus   Planet = "venus"
	Mercury Planet = "mercury"
	Moon    Planet = "moon"
)

// Order is the Chaldean order, descending apparent speed Saturn to Moon
// successive planetary hours walk this sequence cyclically
var Order = [7]Planet{Saturn, Jupiter, Mars, Sun, Venus, Mercury, Moon}

// DayRulers maps a weekday (Sunday=0) to the planet ruling that calendar day
// This is the literal classical table, it is not an arithmetic shift of Order
// by day index, so it is spelled out rather than derived
var DayRulers = [7]Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// RulerOfWeekday returns the ruling planet for a weekday
func RulerOfWeekday(d time.Weekday) Planet {
	return DayRulers[int(d)%7]
}

// Index returns the position of p in the Chaldean order, or -1 if p is unknown
func Index(p Planet) int {
	for i, o := range Order {
		if o == p {
			return i
		}
	}
	return -1
}

// Valid reports whether p names one of the seven classical planets
func (p Planet) Valid() bool { return Index(p) >= 0 }

// Parse converts a case-insensitive planet name into a Planet
func Parse(s string) (Planet, error) {
	p := Planet(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", perr.InvalidArgf("unknown planet %q", s)
	}
	return p, nil
}
