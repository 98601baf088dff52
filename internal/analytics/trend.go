package analytics

// LinearRegression fits an ordinary least-squares line over ys, using the
// position as x, and returns the line evaluated at every position.
// An empty input gives an empty result and a single value gives a flat line.
func LinearRegression(ys []float64) []float64 {
	n := len(ys)
	switch n {
	case 0:
		return []float64{}
	case 1:
		return []float64{ys[0]}
	}

	N := float64(n)
	xSum := N * (N - 1) / 2
	xSqSum := N * (N - 1) * (2*N - 1) / 6

	var ySum, xySum float64
	for i, y := range ys {
		ySum += y
		xySum += float64(i) * y
	}

	slope := (N*xySum - xSum*ySum) / (N*xSqSum - xSum*xSum)
	intercept := (ySum - slope*xSum) / N

	line := make([]float64, n)
	for i := range line {
		line[i] = slope*float64(i) + intercept
	}
	return line
}
