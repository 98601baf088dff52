package analytics

import (
	"fmt"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
)

// Resolve turns a window selection into a concrete inclusive range relative to today.
func Resolve(spec entity.WindowSpec, today entity.Date) (entity.Window, error) {
	switch spec.Kind {
	case entity.WindowLastWeek:
		return entity.Window{Start: today.AddDays(-7), End: today}, nil
	case entity.WindowLastMonth:
		return entity.Window{Start: today.AddDate(0, -1, 0), End: today}, nil
	case entity.WindowLastYear:
		return entity.Window{Start: today.AddDate(-1, 0, 0), End: today}, nil
	case entity.WindowCalendar:
		if spec.Start.After(spec.End) {
			return entity.Window{}, &InvalidRangeError{Start: spec.Start, End: spec.End}
		}
		return entity.Window{Start: spec.Start, End: spec.End}, nil
	case entity.WindowAnchored:
		return anchoredWindow(spec.Anchor, today), nil
	default:
		return entity.Window{}, fmt.Errorf("%w: %q", ErrUnknownWindowKind, spec.Kind)
	}
}

// anchoredWindow is always seven days wide. The closer the anchor is to today,
// the more of the window shifts into the past, since days after today have no snippets.
func anchoredWindow(anchor, today entity.Date) entity.Window {
	before, after := 3, 3

	switch anchor.DaysUntil(today) {
	case 0:
		before, after = 6, 0
	case 1:
		before, after = 5, 1
	case 2:
		before, after = 4, 2
	}

	return entity.Window{
		Start: anchor.AddDays(-before),
		End:   anchor.AddDays(after),
	}
}
