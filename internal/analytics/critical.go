package analytics

// ClassifyCritical returns the items scoring strictly below threshold.
func ClassifyCritical[T Scored](items []T, threshold float64) []T {
	critical := make([]T, 0)
	for _, item := range items {
		if item.ScoreValue() < threshold {
			critical = append(critical, item)
		}
	}
	return critical
}
