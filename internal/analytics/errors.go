package analytics

import (
	"errors"
	"fmt"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
)

var (
	ErrInvalidRange      = errors.New("invalid date range")
	ErrUnknownWindowKind = errors.New("unknown window kind")
	ErrUnknownMetric     = errors.New("unknown metric")
	ErrUnknownPolicy     = errors.New("unknown merge policy")
)

// InvalidRangeError is returned for calendar windows whose start is after their end.
type InvalidRangeError struct {
	Start entity.Date
	End   entity.Date
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("start %s is after end %s", e.Start, e.End)
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}
