package util

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/edp1096/natural-unit/pkg/dimension"
	"github.com/edp1096/natural-unit/pkg/factor"
)

func FormatScientific(value float64) string {
	return FormatPrecision(value, 6)
}

func FormatPrecision(value float64, precision int) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "+Inf"
	case math.IsInf(value, -1):
		return "-Inf"
	}
	if precision < 0 {
		precision = 6
	}
	return fmt.Sprintf("%.*e", precision, value) // e.g., "7.426161e-29"
}

// FormatExponents renders mass, length and time powers, e.g. "M L^2 T^-2".
func FormatExponents(d dimension.Dimension) string {
	m, l, t := d.Exponents()
	parts := make([]string, 0, 3)
	for _, p := range []struct {
		sym string
		exp int
	}{{"M", m}, {"L", l}, {"T", t}} {
		switch p.exp {
		case 0:
		case 1:
			parts = append(parts, p.sym)
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", p.sym, p.exp))
		}
	}
	return strings.Join(parts, " ")
}

// FormatFactorTable writes one line per dimension in declaration order.
func FormatFactorTable(w io.Writer, f factor.ConversionFactor, precision int) error {
	for _, d := range dimension.All() {
		if _, err := fmt.Fprintf(w, "%-17s %-11s %s\n", d, FormatExponents(d), FormatPrecision(f.Of(d), precision)); err != nil {
			return err
		}
	}
	return nil
}
