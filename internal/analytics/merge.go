package analytics

import (
	"sort"

	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/dinerozz/snippet-analytics-backend/pkg/utils"
)

// MergePolicy decides how snippets of several users become one series.
//
// The two multi-user policies give different numbers for days where several
// users wrote snippets, so each call site names the policy it relies on:
// team analytics uses MergeDailyAverage, the home dashboard uses MergePooled,
// the graphs page looks at a single user with MergeNone.
type MergePolicy string

const (
	// MergeNone uses the first member's snippets as they are.
	MergeNone MergePolicy = "none"
	// MergeDailyAverage averages all members' scores per calendar day, then buckets.
	MergeDailyAverage MergePolicy = "daily_average"
	// MergePooled concatenates raw snippets and lets the weekday bucketing average them.
	MergePooled MergePolicy = "pooled"
)

func (p MergePolicy) Valid() bool {
	switch p {
	case MergeNone, MergeDailyAverage, MergePooled:
		return true
	}
	return false
}

// MergeTeam pools every member's snippets and reduces them to one point per day,
// valued at the mean score of that day. Points are ordered by date.
func MergeTeam(members []entity.MemberSnippets) []entity.AggregatedPoint {
	return mergeDaily(PoolManaged(members), func(s entity.Snippet) float64 { return s.Score })
}

// TeamAverage is the mean of the team's daily merged scores, rounded to one decimal.
// A team without dated snippets averages 0.
func TeamAverage(members []entity.MemberSnippets) float64 {
	points := MergeTeam(members)
	if len(points) == 0 {
		return 0
	}

	var total float64
	for _, p := range points {
		total += p.Value
	}
	return utils.RoundToOneDecimal(total / float64(len(points)))
}

// PoolManaged concatenates snippets in member order without averaging.
// The first member is the manager, the rest are direct reports.
func PoolManaged(members []entity.MemberSnippets) []entity.Snippet {
	total := 0
	for _, m := range members {
		total += len(m.Snippets)
	}

	pooled := make([]entity.Snippet, 0, total)
	for _, m := range members {
		pooled = append(pooled, m.Snippets...)
	}
	return pooled
}

type dayStats struct {
	total float64
	count int
}

func mergeDaily(snippets []entity.Snippet, value func(entity.Snippet) float64) []entity.AggregatedPoint {
	stats := make(map[string]*dayStats)
	days := make([]entity.Date, 0)

	for _, s := range snippets {
		if s.Date.IsZero() {
			continue
		}
		key := s.Date.String()
		st, ok := stats[key]
		if !ok {
			st = &dayStats{}
			stats[key] = st
			days = append(days, s.Date)
		}
		st.total += value(s)
		st.count++
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	points := make([]entity.AggregatedPoint, 0, len(days))
	for _, day := range days {
		st := stats[day.String()]
		points = append(points, entity.AggregatedPoint{
			Date:  day,
			Value: st.total / float64(st.count),
		})
	}
	return points
}
