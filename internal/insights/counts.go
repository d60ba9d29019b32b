package insights

import (
	"sort"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

// KeyCount is one row of a frequency table.
type KeyCount struct {
	Key   string
	Count int
}

// rankCounts turns an occurrence map into a descending frequency table. Ties
// keep first-encountered order, taken from the order slice.
func rankCounts(counts map[string]int, order []string) []KeyCount {
	ranked := make([]KeyCount, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, KeyCount{Key: key, Count: counts[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// CategoryCounts groups entries by category name, skipping uncategorized ones.
func CategoryCounts[T Entry](entries []T) []KeyCount {
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		name := e.CategoryName()
		if name == "" {
			continue
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}
	return rankCounts(counts, order)
}

// CopingStrategyCounts ranks the coping strategies recorded on trigger entries.
func CopingStrategyCounts(entries []models.TriggerEntry) []KeyCount {
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		if e.CopingStrategy == "" {
			continue
		}
		if _, seen := counts[e.CopingStrategy]; !seen {
			order = append(order, e.CopingStrategy)
		}
		counts[e.CopingStrategy]++
	}
	return rankCounts(counts, order)
}
