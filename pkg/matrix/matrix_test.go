package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrixRejectsEmpty(t *testing.T) {
	_, err := NewMatrix(0)
	assert.Error(t, err)
}

func TestSolve3x3(t *testing.T) {
	m, err := NewMatrix(3)
	require.NoError(t, err)
	defer m.Destroy()

	// 2x + y - z = 8, -3x - y + 2z = -11, -2x + y + 2z = -3  =>  (2, 3, -1)
	rows := [][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	}
	rhs := []float64{8, -11, -3}
	for i, row := range rows {
		for j, v := range row {
			m.AddElement(i+1, j+1, v)
		}
		m.AddRHS(i+1, rhs[i])
	}

	require.NoError(t, m.Solve())
	x := m.Solution()
	assert.InDelta(t, 2.0, x[1], 1e-12)
	assert.InDelta(t, 3.0, x[2], 1e-12)
	assert.InDelta(t, -1.0, x[3], 1e-12)
}

func TestAddAccumulates(t *testing.T) {
	m, err := NewMatrix(2)
	require.NoError(t, err)
	defer m.Destroy()

	m.AddElement(1, 2, 1.5)
	m.AddElement(1, 2, 2.5)
	m.AddRHS(2, 3)
	m.AddRHS(2, 4)
	assert.Equal(t, 4.0, m.Element(1, 2))
	assert.Equal(t, 7.0, m.RHS()[2])
	assert.Equal(t, 0.0, m.Element(3, 3))

	m.Clear()
	assert.Equal(t, 0.0, m.Element(1, 2))
	assert.Equal(t, 0.0, m.RHS()[2])
}

func TestOutOfBoundsPanics(t *testing.T) {
	m, err := NewMatrix(2)
	require.NoError(t, err)
	defer m.Destroy()

	assert.Panics(t, func() { m.AddElement(0, 1, 1) })
	assert.Panics(t, func() { m.AddRHS(3, 1) })
}

func TestString(t *testing.T) {
	m, err := NewMatrix(2)
	require.NoError(t, err)
	defer m.Destroy()

	m.AddElement(1, 1, 2)
	m.AddElement(2, 2, -1)
	m.AddRHS(1, 4)
	assert.Equal(t, " +2*x1 = 4\n -1*x2 = 0\n", m.String())

	// Rendering leaves the coefficients unchanged.
	assert.Equal(t, 0.0, m.Element(1, 2))
	assert.Equal(t, 2.0, m.Element(1, 1))
	assert.Equal(t, " +2*x1 = 4\n -1*x2 = 0\n", m.String())
}
