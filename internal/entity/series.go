package entity

type SeriesKind string

const (
	SeriesRaw              SeriesKind = "raw"
	SeriesTrend            SeriesKind = "trend"
	SeriesDayOfWeekAverage SeriesKind = "dayOfWeekAverage"
	SeriesCritical         SeriesKind = "critical"
	SeriesSkillHistory     SeriesKind = "skillHistory"
)

// AggregatedPoint is one chart point. Weekday points carry a Label and no Date.
type AggregatedPoint struct {
	Date  Date    `json:"date"`
	Label string  `json:"label,omitempty"`
	Value float64 `json:"value"`
}

func (p AggregatedPoint) Day() Date           { return p.Date }
func (p AggregatedPoint) ScoreValue() float64 { return p.Value }

type Series struct {
	Label  string            `json:"label"`
	Kind   SeriesKind        `json:"kind"`
	Points []AggregatedPoint `json:"points"`
}
