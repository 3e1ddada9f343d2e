package centroid

import (
	"strings"

	"github.com/pkg/errors"
)

// Unit - linear distance unit used by Distance and Along
type Unit uint8

const (
	Meters Unit = iota
	Kilometers
	Miles
	NauticalMiles
	Feet
)

// metres per unit, indexed by Unit
var unitFactors = [...]float64{
	Meters:        1,
	Kilometers:    1000,
	Miles:         1609.344,
	NauticalMiles: 1852,
	Feet:          0.3048,
}

var unitNames = [...]string{
	Meters:        "m",
	Kilometers:    "km",
	Miles:         "mi",
	NauticalMiles: "nmi",
	Feet:          "ft",
}

// ParseUnit - resolve a unit from its abbreviation
func ParseUnit(s string) (Unit, error) {
	var norm = strings.ToLower(strings.TrimSpace(s))
	for u, name := range unitNames {
		if name == norm {
			return Unit(u), nil
		}
	}
	return Meters, errors.Errorf("unknown distance unit %q", s)
}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "unknown"
}

func (u Unit) toMeters(d float64) float64 {
	return d * u.factor()
}

func (u Unit) fromMeters(d float64) float64 {
	return d / u.factor()
}

// unknown units fall back to metres
func (u Unit) factor() float64 {
	if int(u) < len(unitFactors) {
		return unitFactors[u]
	}
	return 1
}
