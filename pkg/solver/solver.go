// Package solver derives base conversion factors from three defining
// constraints, such as "c = 1" or "G = 1".
//
// A quantity with mass, length and time exponents (a, b, c) is scaled by
// m^a * l^b * t^c. Fixing its value in the target system gives one equation
// that is linear in (ln m, ln l, ln t); three independent constraints fix all
// three base factors.
package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/edp1096/natural-unit/pkg/consts"
	"github.com/edp1096/natural-unit/pkg/dimension"
	"github.com/edp1096/natural-unit/pkg/factor"
	"github.com/edp1096/natural-unit/pkg/matrix"
)

var (
	ErrNonPositive = errors.New("constraint values must be positive")
	ErrDegenerate  = errors.New("constraint exponents are linearly dependent")
)

// Constraint fixes the numeric value of one quantity in the target system.
type Constraint struct {
	Name      string
	Exponents [3]float64 // powers of mass, length, time
	Value     float64    // value in the source system
	Target    float64    // value required in the target system
}

// ForDimension builds a constraint whose exponents are those of d.
func ForDimension(name string, d dimension.Dimension, value, target float64) Constraint {
	m, l, t := d.Exponents()
	return Constraint{
		Name:      name,
		Exponents: [3]float64{float64(m), float64(l), float64(t)},
		Value:     value,
		Target:    target,
	}
}

// Stamp writes the constraint as row i of the log-space system.
func (c Constraint) Stamp(s matrix.Stamper, i int) {
	for j, e := range c.Exponents {
		if e != 0 {
			s.AddElement(i, j+1, e)
		}
	}
	s.AddRHS(i, math.Log(c.Target/c.Value))
}

func (c Constraint) validate() error {
	if !(c.Value > 0) || !(c.Target > 0) || math.IsInf(c.Value, 0) || math.IsInf(c.Target, 0) {
		return fmt.Errorf("%s (value=%g, target=%g): %w", c.Name, c.Value, c.Target, ErrNonPositive)
	}
	return nil
}

func determinant(cs [3]Constraint) float64 {
	a, b, c := cs[0].Exponents, cs[1].Exponents, cs[2].Exponents
	return a[0]*(b[1]*c[2]-b[2]*c[1]) -
		a[1]*(b[0]*c[2]-b[2]*c[0]) +
		a[2]*(b[0]*c[1]-b[1]*c[0])
}

// Solve returns the conversion factor that satisfies all three constraints.
func Solve(cs [3]Constraint) (factor.ConversionFactor, error) {
	for _, c := range cs {
		if err := c.validate(); err != nil {
			return factor.ConversionFactor{}, err
		}
	}
	if determinant(cs) == 0 {
		return factor.ConversionFactor{}, fmt.Errorf("%s, %s, %s: %w", cs[0].Name, cs[1].Name, cs[2].Name, ErrDegenerate)
	}

	m, err := matrix.NewMatrix(3)
	if err != nil {
		return factor.ConversionFactor{}, err
	}
	defer m.Destroy()

	for i, c := range cs {
		c.Stamp(m, i+1)
	}

	if err := m.Solve(); err != nil {
		return factor.ConversionFactor{}, fmt.Errorf("solving base factors: %w", err)
	}

	x := m.Solution()
	return factor.New(math.Exp(x[1]), math.Exp(x[2]), math.Exp(x[3])), nil
}

// Geometrized returns the constraints c = G = 1 with one source length unit
// mapped onto length target units.
func Geometrized(table consts.FundamentalConstant, length float64) [3]Constraint {
	return [3]Constraint{
		ForDimension("c", dimension.Velocity, table.C, 1),
		{Name: "G", Exponents: [3]float64{-1, 3, -2}, Value: table.G, Target: 1},
		ForDimension("length", dimension.Length, 1, length),
	}
}

// Natural returns the constraints c = hbar = 1 with energies measured in eV.
func Natural(table consts.FundamentalConstant) [3]Constraint {
	return [3]Constraint{
		ForDimension("c", dimension.Velocity, table.C, 1),
		ForDimension("hbar", dimension.AngularMomentum, table.Hbar, 1),
		ForDimension("eV", dimension.Energy, table.EV, 1),
	}
}
