package insights

import (
	"strings"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

// Entry is the read-only view the filter layer needs from a tracked record.
type Entry interface {
	EntryDate() string
	Favorite() bool
	CategoryName() string
	SearchFields() []string
}

// Query is a composable set of filter predicates combined with AND. Zero
// fields do not filter.
type Query struct {
	FavoritesOnly bool
	Search        string
	Category      string
	From          string // YYYY-MM-DD, inclusive; empty = unbounded
	To            string // YYYY-MM-DD, inclusive; empty = unbounded
}

// IsZero reports whether no predicate is active.
func (q Query) IsZero() bool {
	return !q.FavoritesOnly && q.Search == "" && q.Category == "" && q.From == "" && q.To == ""
}

// Matches applies every active predicate to a single entry.
func (q Query) Matches(e Entry) bool {
	if q.FavoritesOnly && !e.Favorite() {
		return false
	}
	if q.Category != "" && e.CategoryName() != q.Category {
		return false
	}
	if q.From != "" && e.EntryDate() < q.From {
		return false
	}
	if q.To != "" && e.EntryDate() > q.To {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		found := false
		for _, field := range e.SearchFields() {
			if strings.Contains(strings.ToLower(field), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Filter returns the entries matching the query, order preserved. It is pure:
// the input slice is never mutated.
func Filter[T Entry](entries []T, q Query) []T {
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		if q.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// VisibleMoodEntries applies the mood tracker's display default: with no
// explicit filter active, only today's entries are shown. This is a display
// default, not a storage limitation.
func VisibleMoodEntries(entries []models.MoodEntry, q Query, today string) []models.MoodEntry {
	if q.IsZero() {
		q = Query{From: today, To: today}
	}
	return Filter(entries, q)
}
