package analytics

import (
	"testing"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/gofrs/uuid"
)

var (
	alice = uuid.Must(uuid.FromString("11111111-1111-1111-1111-111111111111"))
	bob   = uuid.Must(uuid.FromString("22222222-2222-2222-2222-222222222222"))
)

func day(t *testing.T, value string) entity.Date {
	t.Helper()
	d, err := entity.ParseDate(value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return d
}

func snippet(t *testing.T, owner uuid.UUID, date string, score float64) entity.Snippet {
	t.Helper()
	return entity.Snippet{
		ID:      uuid.Must(uuid.NewV4()),
		OwnerID: owner,
		Date:    day(t, date),
		Score:   score,
	}
}

func scoresOf(snippets []entity.Snippet) []float64 {
	out := make([]float64, len(snippets))
	for i, s := range snippets {
		out[i] = s.Score
	}
	return out
}
