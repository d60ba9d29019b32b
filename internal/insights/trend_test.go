package insights

import (
	"testing"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

// moodSeries builds entries from oldest-to-newest values, returning them
// newest-first as collections store them.
func moodSeries(values ...int) []models.MoodEntry {
	entries := make([]models.MoodEntry, len(values))
	for i, v := range values {
		entries[len(values)-1-i] = models.MoodEntry{ID: int64(i + 1), Mood: v}
	}
	return entries
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name   string
		values []int // oldest to newest
		want   Trend
	}{
		{"no entries", nil, TrendInsufficient},
		{"two entries", []int{3, 4}, TrendInsufficient},
		{"high variance wins over mean delta", []int{5, 5, 5, -8, 9}, TrendFluctuating},
		{"flat series", []int{4, 4, 4, 4}, TrendStable},
		{"improving", []int{-2, -2, -2, -2, -2, -2, -2, 4, 4, 4, 4, 4, 4, 4}, TrendImproving},
		{"declining", []int{4, 4, 4, 4, 4, 4, 4, -2, -2, -2, -2, -2, -2, -2}, TrendDeclining},
		{"small delta is stable", []int{3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4}, TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTrend(moodSeries(tt.values...))
			if got != tt.want {
				t.Errorf("ClassifyTrend(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestFluctuatingRegardlessOfMeanDifference(t *testing.T) {
	// Recent window variance is ~33.8 (> 16); even though the recent average
	// differs sharply from the prior window, fluctuating takes precedence.
	values := []int{0, 0, 0, 0, 0, 0, 0, 5, 5, 5, -8, 9}
	got := ClassifyTrend(moodSeries(values...))
	if got != TrendFluctuating {
		t.Errorf("ClassifyTrend() = %q, want %q", got, TrendFluctuating)
	}
}

func TestInsufficientDataHasFixedMessage(t *testing.T) {
	got := ClassifyTrend(moodSeries(3, 4))
	if got != TrendInsufficient {
		t.Fatalf("ClassifyTrend() = %q, want %q", got, TrendInsufficient)
	}
	if got.Message() == "" || got.Message() == TrendStable.Message() {
		t.Error("insufficient-data trend must carry its own fixed message")
	}
}

func TestAverageMood(t *testing.T) {
	entries := moodSeries(2, 4, 6)
	if avg := AverageMood(entries); avg != 4 {
		t.Errorf("AverageMood() = %v, want 4", avg)
	}
	if avg := AverageMood(nil); avg != 0 {
		t.Errorf("AverageMood(nil) = %v, want 0", avg)
	}
}

func TestPopulationVariance(t *testing.T) {
	// Values 5,5,5,-8,9: mean 3.2, population variance 33.76
	entries := moodSeries(5, 5, 5, -8, 9)
	got := populationVariance(entries)
	if got < 33.75 || got > 33.77 {
		t.Errorf("populationVariance() = %v, want ~33.76", got)
	}
}
