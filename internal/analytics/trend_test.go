package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearRegressionFlat(t *testing.T) {
	for _, ys := range [][]float64{
		{7},
		{7, 7},
		{3.3, 3.3, 3.3, 3.3, 3.3},
		{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1},
	} {
		line := LinearRegression(ys)
		require.Len(t, line, len(ys))
		for i := range line {
			assert.InDelta(t, ys[0], line[i], 1e-9)
		}
	}
}

func TestLinearRegressionExactLine(t *testing.T) {
	ys := []float64{1, 3, 5, 7}

	line := LinearRegression(ys)

	require.Len(t, line, 4)
	for i := range ys {
		assert.InDelta(t, ys[i], line[i], 1e-9)
	}
}

func TestLinearRegressionFit(t *testing.T) {
	// slope 1.3, intercept 1.3 for x = 0..3
	line := LinearRegression([]float64{1, 3, 4, 5})

	require.Len(t, line, 4)
	assert.InDelta(t, 1.3, line[0], 1e-9)
	assert.InDelta(t, 5.2, line[3], 1e-9)
	assert.InDelta(t, line[1]-line[0], line[3]-line[2], 1e-9)
}

func TestLinearRegressionEmpty(t *testing.T) {
	line := LinearRegression(nil)
	assert.NotNil(t, line)
	assert.Empty(t, line)
}
