package constants

const (
	// Mood trend classification:
	// - TrendWindow is the number of most recent entries compared against the
	//   window immediately before it.
	// - TrendVarianceThreshold is the population variance above which the recent
	//   window is classified as fluctuating regardless of mean difference.
	// - TrendMeanDelta is the minimum difference between the recent and prior
	//   averages required to classify a trend as improving or declining.
	// - TrendMinEntries is the minimum total entry count below which no trend is
	//   reported.
	TrendWindow            = 7
	TrendVarianceThreshold = 16.0
	TrendMeanDelta         = 2.0
	TrendMinEntries        = 3

	// Mood rating bounds (journal scale)
	MoodMin = -10
	MoodMax = 10

	// Trigger intensity bounds
	IntensityMin = 1
	IntensityMax = 10
)

const (
	// Progressive muscle relaxation phase lengths in seconds
	RelaxTenseSeconds   = 10
	RelaxReleaseSeconds = 15
)

func init() {
	// Runtime validation: the tense phase must be shorter than the release
	// phase or the auto-transition ordering breaks
	if RelaxTenseSeconds >= RelaxReleaseSeconds {
		panic("RelaxTenseSeconds must be less than RelaxReleaseSeconds")
	}
}
