package helpers

import (
	"sort"

	"github.com/doeshing/dpc-go/internal/domain"
)

// LabelStatistic represents how often a label was produced
type LabelStatistic struct {
	Label string
	Count int
}

// CalculateTopLabels returns the top N most frequent labels.
// If limit is 0 or negative, returns all labels
func CalculateTopLabels(records []domain.HistoryRecord, limit int) []LabelStatistic {
	frequency := make(map[string]int)
	for _, rec := range records {
		frequency[rec.Label]++
	}

	stats := make([]LabelStatistic, 0, len(frequency))
	for label, count := range frequency {
		stats = append(stats, LabelStatistic{Label: label, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count == stats[j].Count {
			return stats[i].Label < stats[j].Label
		}
		return stats[i].Count > stats[j].Count
	})

	if limit > 0 && len(stats) > limit {
		return stats[:limit]
	}
	return stats
}

// Percentage returns part as a percentage of total, 0 when total is 0.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(part) / float64(total) * 100.0
}
