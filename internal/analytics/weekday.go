package analytics

import "time"

var weekdayLabels = [7]string{
	time.Sunday:    "Sunday",
	time.Monday:    "Monday",
	time.Tuesday:   "Tuesday",
	time.Wednesday: "Wednesday",
	time.Thursday:  "Thursday",
	time.Friday:    "Friday",
	time.Saturday:  "Saturday",
}

// AggregateByWeekday averages scores per weekday, Sunday first.
// A weekday without items is 0, which charts draw as an empty bar.
func AggregateByWeekday[T Scored](items []T) [7]float64 {
	var totals [7]float64
	var counts [7]int

	for _, item := range items {
		day := item.Day().Weekday()
		totals[day] += item.ScoreValue()
		counts[day]++
	}

	var averages [7]float64
	for i := range averages {
		if counts[i] > 0 {
			averages[i] = totals[i] / float64(counts[i])
		}
	}
	return averages
}
