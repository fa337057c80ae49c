// Package matrix wraps a real sparse matrix with its right-hand side and
// solution vectors.
package matrix

import (
	"fmt"
	"strings"

	"github.com/edp1096/sparse"
)

type SystemMatrix struct {
	Size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
	config   *sparse.Configuration
}

func NewMatrix(size int) (*SystemMatrix, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid matrix size %d", size)
	}

	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              false,
		Translate:               false,
		ModifiedNodal:           false,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %w", err)
	}

	return &SystemMatrix{
		Size:     size,
		matrix:   mat,
		rhs:      make([]float64, size+1), // 1-based indexing
		solution: make([]float64, size+1),
		config:   config,
	}, nil
}

func (m *SystemMatrix) inBounds(i int) bool {
	return i > 0 && i <= m.Size
}

func (m *SystemMatrix) AddElement(i, j int, value float64) {
	if !m.inBounds(i) || !m.inBounds(j) {
		panic(fmt.Sprintf("matrix: index out of bounds (i=%d, j=%d, size=%d)", i, j, m.Size))
	}
	m.matrix.GetElement(int64(i), int64(j)).Real += value
}

func (m *SystemMatrix) AddRHS(i int, value float64) {
	if !m.inBounds(i) {
		panic(fmt.Sprintf("matrix: RHS index out of bounds (i=%d, size=%d)", i, m.Size))
	}
	m.rhs[i] += value
}

// Element returns the accumulated coefficient at (i, j). The sparse matrix
// allocates a zero entry for (i, j) if none exists yet.
func (m *SystemMatrix) Element(i, j int) float64 {
	if !m.inBounds(i) || !m.inBounds(j) {
		return 0
	}
	return m.matrix.GetElement(int64(i), int64(j)).Real
}

func (m *SystemMatrix) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
	}
}

func (m *SystemMatrix) Solve() error {
	if err := m.matrix.Factor(); err != nil {
		return fmt.Errorf("matrix factorization failed: %w", err)
	}

	solution, err := m.matrix.Solve(m.rhs)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %w", err)
	}
	m.solution = solution

	return nil
}

func (m *SystemMatrix) RHS() []float64 {
	return m.rhs
}

// Solution returns the 1-based solution vector of the last Solve.
func (m *SystemMatrix) Solution() []float64 {
	return m.solution
}

// String renders the system one equation per line. It reads every entry
// through Element, filling the full pattern with zero entries.
func (m *SystemMatrix) String() string {
	var sb strings.Builder
	for i := 1; i <= m.Size; i++ {
		for j := 1; j <= m.Size; j++ {
			if v := m.Element(i, j); v != 0 {
				fmt.Fprintf(&sb, " %+g*x%d", v, j)
			}
		}
		fmt.Fprintf(&sb, " = %g\n", m.rhs[i])
	}
	return sb.String()
}

func (m *SystemMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
		m.matrix = nil
	}
}
