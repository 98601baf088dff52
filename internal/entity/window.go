package entity

type WindowKind string

const (
	WindowLastWeek  WindowKind = "lastWeek"
	WindowLastMonth WindowKind = "lastMonth"
	WindowLastYear  WindowKind = "lastYear"
	WindowCalendar  WindowKind = "calendar"
	WindowAnchored  WindowKind = "anchored"
)

// WindowSpec selects a date range. Start/End are used by calendar windows, Anchor by anchored ones.
type WindowSpec struct {
	Kind   WindowKind `json:"kind"`
	Start  Date       `json:"start"`
	End    Date       `json:"end"`
	Anchor Date       `json:"anchor"`
}

// Window is a resolved, inclusive date range.
type Window struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

func (w Window) Contains(d Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}
