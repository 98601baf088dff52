package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/dinerozz/snippet-analytics-backend/pkg/utils"
)

// Request carries everything a chart refresh depends on. Nothing is remembered between calls.
type Request struct {
	Window    entity.WindowSpec
	Today     entity.Date
	Policy    MergePolicy
	Metric    Metric
	Trendline bool
	Weekday   bool
	// CriticalThreshold enables the critical series when set.
	CriticalThreshold *float64
	Label             string
}

type Result struct {
	Window entity.Window   `json:"window"`
	Policy MergePolicy     `json:"policy"`
	Metric Metric          `json:"metric"`
	Series []entity.Series `json:"series"`
	// AverageScore averages the charted metric, so it is a tag count or a text length
	// unless the metric is sentiment.
	AverageScore float64              `json:"average_score"`
	Overview     []entity.OverviewRow `json:"overview,omitempty"`
	Empty        bool                 `json:"empty"`
}

// Assemble runs the whole pipeline over already fetched snippets:
// window, merge, filter, sort, metric, then the optional trend, weekday and critical series.
//
// With MergeNone and MergePooled the raw series has one point per snippet, so a day
// can appear more than once; MergeDailyAverage produces one point per day.
func Assemble(req Request, members []entity.MemberSnippets) (*Result, error) {
	if req.Policy == "" {
		req.Policy = MergeNone
	}
	if !req.Policy.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, req.Policy)
	}
	if req.Metric == "" {
		req.Metric = MetricSentiment
	}
	if _, ok := metricLabels[req.Metric]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, req.Metric)
	}

	window, err := Resolve(req.Window, req.Today)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Window: window,
		Policy: req.Policy,
		Metric: req.Metric,
	}

	var points []entity.AggregatedPoint
	switch req.Policy {
	case MergeDailyAverage:
		merged := mergeDaily(PoolManaged(members), req.Metric.valueOf)
		points = Filter(merged, window)
	default:
		var snippets []entity.Snippet
		if req.Policy == MergePooled {
			snippets = PoolManaged(members)
		} else if len(members) > 0 {
			snippets = members[0].Snippets
		}

		filtered := Filter(snippets, window)
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Date.Before(filtered[j].Date)
		})

		points = make([]entity.AggregatedPoint, 0, len(filtered))
		for _, s := range filtered {
			points = append(points, entity.AggregatedPoint{Date: s.Date, Value: req.Metric.valueOf(s)})
		}
		result.Overview = buildOverview(filtered)
	}

	label := req.Label
	if label == "" {
		label = req.Metric.Label() + " over time"
	}
	result.Series = append(result.Series, entity.Series{
		Label:  label,
		Kind:   entity.SeriesRaw,
		Points: points,
	})

	if req.Trendline {
		result.Series = append(result.Series, trendSeries(points))
	}
	if req.Weekday {
		result.Series = append(result.Series, weekdaySeries(points, req.Metric))
	}
	if req.CriticalThreshold != nil {
		result.Series = append(result.Series, entity.Series{
			Label:  criticalLabel(req.Metric, *req.CriticalThreshold),
			Kind:   entity.SeriesCritical,
			Points: ClassifyCritical(points, *req.CriticalThreshold),
		})
	}

	result.AverageScore = averageOf(points)
	result.Empty = len(points) == 0

	return result, nil
}

func criticalLabel(metric Metric, threshold float64) string {
	if metric == MetricSentiment {
		return fmt.Sprintf("Critical Panthers (Score Under %g)", threshold)
	}
	return fmt.Sprintf("Critical Days (%s Under %g)", metric.Label(), threshold)
}

func trendSeries(points []entity.AggregatedPoint) entity.Series {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}

	line := LinearRegression(values)
	trend := make([]entity.AggregatedPoint, len(line))
	for i, v := range line {
		trend[i] = entity.AggregatedPoint{Date: points[i].Date, Value: v}
	}

	return entity.Series{Label: "Trendline", Kind: entity.SeriesTrend, Points: trend}
}

func weekdaySeries(points []entity.AggregatedPoint, metric Metric) entity.Series {
	averages := AggregateByWeekday(points)

	bars := make([]entity.AggregatedPoint, len(averages))
	for i, v := range averages {
		bars[i] = entity.AggregatedPoint{Label: weekdayLabels[i], Value: v}
	}

	return entity.Series{
		Label:  "Average " + metric.Label() + " by Day",
		Kind:   entity.SeriesDayOfWeekAverage,
		Points: bars,
	}
}

func averageOf(points []entity.AggregatedPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var total float64
	for _, p := range points {
		total += p.Value
	}
	return utils.RoundToTwoDecimals(total / float64(len(points)))
}

// buildOverview lists snippets newest first for the weekly overview table.
func buildOverview(sorted []entity.Snippet) []entity.OverviewRow {
	rows := make([]entity.OverviewRow, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		s := sorted[i]
		action := "No action provided"
		if s.ActionText != nil && *s.ActionText != "" {
			action = *s.ActionText
		}
		rows = append(rows, entity.OverviewRow{
			Date:       s.Date,
			Green:      joinTags(s.Green),
			Orange:     joinTags(s.Orange),
			Red:        joinTags(s.Red),
			ActionText: action,
		})
	}
	return rows
}

func joinTags(tags []string) string {
	if len(tags) == 0 {
		return "N/A"
	}
	return strings.Join(tags, ", ")
}
