package analytics

import (
	"testing"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestClassifyCriticalIsStrict(t *testing.T) {
	snippets := []entity.Snippet{
		snippet(t, alice, "2024-01-01", 2),
		snippet(t, alice, "2024-01-02", 5),
		snippet(t, alice, "2024-01-03", 6),
		snippet(t, alice, "2024-01-04", 4),
	}

	critical := ClassifyCritical(snippets, 5)

	assert.Equal(t, []float64{2, 4}, scoresOf(critical))
}

func TestClassifyCriticalThresholdIsAParameter(t *testing.T) {
	snippets := []entity.Snippet{
		snippet(t, alice, "2024-01-01", 2),
		snippet(t, alice, "2024-01-02", 3),
		snippet(t, alice, "2024-01-03", 4),
	}

	assert.Len(t, ClassifyCritical(snippets, 3), 1)
	assert.Len(t, ClassifyCritical(snippets, 4), 2)
	assert.Len(t, ClassifyCritical(snippets, 5), 3)
}

func TestClassifyCriticalEmpty(t *testing.T) {
	assert.Empty(t, ClassifyCritical([]entity.Snippet{}, 5))
}
