package analytics

import "github.com/dinerozz/snippet-analytics-backend/internal/entity"

// Dated is anything placed on a calendar day.
type Dated interface {
	Day() entity.Date
}

// Scored is a dated item with a numeric score.
type Scored interface {
	Dated
	ScoreValue() float64
}

// Filter keeps items whose day lies inside the window, both ends inclusive.
func Filter[T Dated](items []T, w entity.Window) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if w.Contains(item.Day()) {
			kept = append(kept, item)
		}
	}
	return kept
}
