package matrix

// Stamper receives the coefficients of one linear system.
type Stamper interface {
	AddElement(i, j int, value float64) // 1-based indexing
	AddRHS(i int, value float64)
}
