package media

// RowWidth computes the per-item width for a row of n items so that the
// items, their (n-1) internal margins, and the two outer margins sum to
// exactly the viewport width.
func RowWidth(n int, viewport, margin float64) float64 {
	if n == 1 {
		return viewport - 2*margin
	}
	return (viewport - float64(n-1)*margin - 2*margin) / float64(n)
}

// RowWidths returns one width per item in the row; every item in a row
// shares the same width.
func RowWidths(row Row, viewport, margin float64) []float64 {
	widths := make([]float64, len(row))
	w := RowWidth(len(row), viewport, margin)
	for i := range widths {
		widths[i] = w
	}
	return widths
}
