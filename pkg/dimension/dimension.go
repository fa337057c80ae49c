// Package dimension enumerates the physical quantities a conversion factor
// can be applied to.
package dimension

import (
	"fmt"
	"strings"
)

// Dimension tags the physical quantity a scalar value represents.
type Dimension int

const (
	Time Dimension = iota
	Length
	Mass
	Velocity
	Momentum
	AngularVelocity
	Acceleration
	Energy
	EnergyDensity
	AngularMomentum
	Force
	Power
	Pressure
	Density
)

var names = [...]string{
	Time:            "time",
	Length:          "length",
	Mass:            "mass",
	Velocity:        "velocity",
	Momentum:        "momentum",
	AngularVelocity: "angular_velocity",
	Acceleration:    "acceleration",
	Energy:          "energy",
	EnergyDensity:   "energy_density",
	AngularMomentum: "angular_momentum",
	Force:           "force",
	Power:           "power",
	Pressure:        "pressure",
	Density:         "density",
}

// Exponents of mass, length and time for each dimension.
var exponents = [...][3]int{
	Time:            {0, 0, 1},
	Length:          {0, 1, 0},
	Mass:            {1, 0, 0},
	Velocity:        {0, 1, -1},
	Momentum:        {1, 1, -1},
	AngularVelocity: {0, 0, -1},
	Acceleration:    {0, 1, -2},
	Energy:          {1, 2, -2},
	EnergyDensity:   {1, -1, -2},
	AngularMomentum: {1, 2, -1},
	Force:           {1, 1, -2},
	Power:           {1, 2, -3},
	Pressure:        {1, -1, -2},
	Density:         {1, -3, 0},
}

// All returns every dimension in declaration order.
func All() []Dimension {
	all := make([]Dimension, 0, len(names))
	for d := range names {
		all = append(all, Dimension(d))
	}
	return all
}

func (d Dimension) Valid() bool {
	return d >= Time && d <= Density
}

func (d Dimension) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
	return names[d]
}

// Exponents returns the powers of mass, length and time that make up d.
func (d Dimension) Exponents() (mass, length, time int) {
	if !d.Valid() {
		panic(fmt.Sprintf("dimension: invalid dimension %d", int(d)))
	}
	e := exponents[d]
	return e[0], e[1], e[2]
}

// Parse resolves a dimension name. Matching ignores case, and '-' or ' ' may
// be used in place of '_'.
func Parse(name string) (Dimension, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for d, n := range names {
		if n == key {
			return Dimension(d), nil
		}
	}
	return 0, fmt.Errorf("unknown dimension %q", name)
}
