// Package system names the supported unit systems and looks up the
// conversion factor between any ordered pair of them.
package system

import (
	"fmt"
	"strings"

	"github.com/edp1096/natural-unit/pkg/factor"
)

// UnitSystem identifies one of the supported systems of units.
type UnitSystem int

const (
	CGS UnitSystem = iota
	SI
	Geometrized // c = G = 1
	Natural     // hbar = c = 1
)

func (s UnitSystem) String() string {
	switch s {
	case CGS:
		return "cgs"
	case SI:
		return "si"
	case Geometrized:
		return "geometrized"
	case Natural:
		return "natural"
	}
	return fmt.Sprintf("UnitSystem(%d)", int(s))
}

// All returns the supported systems, CGS first.
func All() []UnitSystem {
	return []UnitSystem{CGS, SI, Geometrized, Natural}
}

func Parse(name string) (UnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cgs":
		return CGS, nil
	case "si":
		return SI, nil
	case "geometrized", "geom":
		return Geometrized, nil
	case "natural":
		return Natural, nil
	}
	return 0, fmt.Errorf("unknown unit system %q", name)
}

// FromCGS returns the factor converting CGS values into s.
func FromCGS(s UnitSystem) factor.ConversionFactor {
	switch s {
	case CGS:
		return factor.Identity()
	case SI:
		return factor.CGSToSI()
	case Geometrized:
		return factor.CGSToGeom()
	case Natural:
		return factor.CGSToNatural()
	}
	panic(fmt.Sprintf("system: invalid unit system %d", int(s)))
}

// Between returns the factor converting values in from into to. Pairs that
// do not involve CGS are chained through it.
func Between(from, to UnitSystem) factor.ConversionFactor {
	switch {
	case from == to:
		return factor.Identity()
	case from == CGS:
		return FromCGS(to)
	case to == CGS:
		return FromCGS(from).Inverse()
	}
	return FromCGS(from).Inverse().Then(FromCGS(to))
}
