package insights

import (
	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

// Trend classifies the direction of recent mood entries.
type Trend string

const (
	TrendInsufficient Trend = "insufficient data"
	TrendFluctuating  Trend = "fluctuating"
	TrendImproving    Trend = "improving"
	TrendDeclining    Trend = "declining"
	TrendStable       Trend = "stable"
)

// Message returns the fixed user-facing description for a trend.
func (t Trend) Message() string {
	switch t {
	case TrendInsufficient:
		return "Not enough entries yet. Log a few more moods to see a trend."
	case TrendFluctuating:
		return "Your mood has been very variable lately."
	case TrendImproving:
		return "Your mood has been improving."
	case TrendDeclining:
		return "Your mood has been declining."
	default:
		return "Your mood has been stable."
	}
}

// AverageMood returns the arithmetic mean of the mood values.
func AverageMood(entries []models.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.Mood
	}
	return float64(sum) / float64(len(entries))
}

// ClassifyTrend classifies the mood trend from entries ordered newest-first.
// The most recent window (up to TrendWindow entries) is compared against the
// window immediately before it:
//   - fewer than TrendMinEntries total entries → TrendInsufficient
//   - population variance of the recent window > TrendVarianceThreshold →
//     TrendFluctuating, regardless of mean difference
//   - recent average differing from the prior average by more than
//     TrendMeanDelta → TrendImproving or TrendDeclining
//   - otherwise TrendStable (including when no prior window exists)
func ClassifyTrend(entries []models.MoodEntry) Trend {
	if len(entries) < constants.TrendMinEntries {
		return TrendInsufficient
	}

	recent := entries
	if len(recent) > constants.TrendWindow {
		recent = recent[:constants.TrendWindow]
	}
	var prior []models.MoodEntry
	if len(entries) > constants.TrendWindow {
		prior = entries[constants.TrendWindow:]
		if len(prior) > constants.TrendWindow {
			prior = prior[:constants.TrendWindow]
		}
	}

	if populationVariance(recent) > constants.TrendVarianceThreshold {
		return TrendFluctuating
	}

	if len(prior) == 0 {
		return TrendStable
	}

	delta := AverageMood(recent) - AverageMood(prior)
	switch {
	case delta > constants.TrendMeanDelta:
		return TrendImproving
	case delta < -constants.TrendMeanDelta:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func populationVariance(entries []models.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	mean := AverageMood(entries)
	sum := 0.0
	for _, e := range entries {
		d := float64(e.Mood) - mean
		sum += d * d
	}
	return sum / float64(len(entries))
}
