package analytics

import (
	"fmt"
	"unicode/utf8"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
)

// Metric selects which number of a snippet is charted.
type Metric string

const (
	MetricSentiment Metric = "sentiment"
	MetricGreen     Metric = "green"
	MetricOrange    Metric = "orange"
	MetricRed       Metric = "red"
	MetricLength    Metric = "length"
)

func ParseMetric(value string) (Metric, error) {
	if value == "" {
		return MetricSentiment, nil
	}
	m := Metric(value)
	if _, ok := metricLabels[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, value)
	}
	return m, nil
}

var metricLabels = map[Metric]string{
	MetricSentiment: "Sentiment",
	MetricGreen:     "Green",
	MetricOrange:    "Orange",
	MetricRed:       "Red",
	MetricLength:    "Length",
}

func (m Metric) Label() string {
	return metricLabels[m]
}

func (m Metric) valueOf(s entity.Snippet) float64 {
	switch m {
	case MetricGreen:
		return float64(len(s.Green))
	case MetricOrange:
		return float64(len(s.Orange))
	case MetricRed:
		return float64(len(s.Red))
	case MetricLength:
		return float64(utf8.RuneCountInString(s.Text))
	default:
		return s.Score
	}
}
