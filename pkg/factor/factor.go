// Package factor derives per-dimension conversion factors from three base
// factors and applies them to scalar values.
//
// A ConversionFactor converts values expressed in a source unit system into a
// target unit system. Only the mass, length and time factors are free; every
// other field is derived from them by New.
package factor

import (
	"fmt"

	"github.com/edp1096/natural-unit/pkg/dimension"
)

// ConversionFactor holds one multiplicative factor per dimension.
type ConversionFactor struct {
	Mass            float64
	Length          float64
	Time            float64
	Velocity        float64
	Momentum        float64
	AngularVelocity float64
	Acceleration    float64
	Energy          float64
	EnergyDensity   float64
	AngularMomentum float64
	Force           float64
	Power           float64
	Pressure        float64
	Density         float64
}

// New derives the full factor set from the base mass, length and time
// factors (target units per source unit). Zero or negative inputs are not
// rejected; they propagate as Inf or NaN.
func New(mass, length, time float64) ConversionFactor {
	velocity := length / time
	momentum := mass * velocity
	angularVelocity := 1 / time
	acceleration := velocity / time
	energy := mass * (velocity * velocity)
	energyDensity := energy / (length * length * length)
	angularMomentum := momentum * length
	force := mass * acceleration
	power := energy / time
	pressure := force / (length * length)
	density := mass / (length * length * length)

	return ConversionFactor{
		Mass:            mass,
		Length:          length,
		Time:            time,
		Velocity:        velocity,
		Momentum:        momentum,
		AngularVelocity: angularVelocity,
		Acceleration:    acceleration,
		Energy:          energy,
		EnergyDensity:   energyDensity,
		AngularMomentum: angularMomentum,
		Force:           force,
		Power:           power,
		Pressure:        pressure,
		Density:         density,
	}
}

// Identity leaves every value unchanged.
func Identity() ConversionFactor {
	return New(1, 1, 1)
}

// Of returns the factor for dimension d. It panics on a value outside the
// dimension enumeration.
func (f ConversionFactor) Of(d dimension.Dimension) float64 {
	switch d {
	case dimension.Time:
		return f.Time
	case dimension.Length:
		return f.Length
	case dimension.Mass:
		return f.Mass
	case dimension.Velocity:
		return f.Velocity
	case dimension.Momentum:
		return f.Momentum
	case dimension.AngularVelocity:
		return f.AngularVelocity
	case dimension.Acceleration:
		return f.Acceleration
	case dimension.Energy:
		return f.Energy
	case dimension.EnergyDensity:
		return f.EnergyDensity
	case dimension.AngularMomentum:
		return f.AngularMomentum
	case dimension.Force:
		return f.Force
	case dimension.Power:
		return f.Power
	case dimension.Pressure:
		return f.Pressure
	case dimension.Density:
		return f.Density
	}
	panic(fmt.Sprintf("factor: invalid dimension %d", int(d)))
}

// Apply converts value from the source system into the target system.
func Apply(value float64, d dimension.Dimension, f ConversionFactor) float64 {
	return value * f.Of(d)
}

// Invert converts value from the target system back into the source system.
func Invert(value float64, d dimension.Dimension, f ConversionFactor) float64 {
	return value / f.Of(d)
}

// Inverse returns the factor for the reverse direction, target to source.
func (f ConversionFactor) Inverse() ConversionFactor {
	return New(1/f.Mass, 1/f.Length, 1/f.Time)
}

// Then chains f with g: the result converts from f's source system into g's
// target system, with g's source being f's target.
func (f ConversionFactor) Then(g ConversionFactor) ConversionFactor {
	return New(f.Mass*g.Mass, f.Length*g.Length, f.Time*g.Time)
}
