package util

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/natural-unit/pkg/dimension"
	"github.com/edp1096/natural-unit/pkg/factor"
)

func TestFormatPrecision(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		want      string
	}{
		{value: 1000, precision: 6, want: "1.000000e+03"},
		{value: 7.4261e-29, precision: 3, want: "7.426e-29"},
		{value: -2.5, precision: 1, want: "-2.5e+00"},
		{value: 1, precision: -1, want: "1.000000e+00"},
		{value: math.Inf(1), precision: 3, want: "+Inf"},
		{value: math.Inf(-1), precision: 3, want: "-Inf"},
		{value: math.NaN(), precision: 3, want: "NaN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrecision(tt.value, tt.precision))
	}
	assert.Equal(t, "1.000000e+02", FormatScientific(100))
}

func TestFormatExponents(t *testing.T) {
	assert.Equal(t, "T", FormatExponents(dimension.Time))
	assert.Equal(t, "L T^-1", FormatExponents(dimension.Velocity))
	assert.Equal(t, "M L^2 T^-2", FormatExponents(dimension.Energy))
	assert.Equal(t, "M L^-3", FormatExponents(dimension.Density))
}

func TestFormatFactorTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatFactorTable(&buf, factor.CGSToSI(), 2))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 14)
	assert.True(t, strings.HasPrefix(lines[0], "time"))
	assert.True(t, strings.HasSuffix(lines[0], "1.00e+00"))
	assert.True(t, strings.HasPrefix(lines[2], "mass"))
	assert.True(t, strings.HasSuffix(lines[2], "1.00e+03"))
}
