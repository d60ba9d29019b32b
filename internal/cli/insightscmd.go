package cli

import (
	"fmt"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/insights"
)

type InsightsCmd struct{}

func (c *InsightsCmd) Run(ctx *Context) error {
	moods, err := ctx.Store.GetMoodEntries()
	if err != nil {
		return err
	}
	triggers, err := ctx.Store.GetTriggerEntries()
	if err != nil {
		return err
	}

	trend := insights.ClassifyTrend(moods)
	fmt.Println(trend.Message())
	if trend != insights.TrendInsufficient {
		recent := moods
		if len(recent) > constants.TrendWindow {
			recent = recent[:constants.TrendWindow]
		}
		fmt.Printf("Average mood (last %d entries): %+.1f\n", len(recent), insights.AverageMood(recent))
	}

	if categories := insights.CategoryCounts(triggers); len(categories) > 0 {
		fmt.Println("\nTrigger categories:")
		for _, row := range categories {
			fmt.Printf("  %-16s %d\n", row.Key, row.Count)
		}
	}
	if strategies := insights.CopingStrategyCounts(triggers); len(strategies) > 0 {
		fmt.Println("\nCoping strategies that helped:")
		for _, row := range strategies {
			fmt.Printf("  %-16s %d\n", row.Key, row.Count)
		}
	}
	return nil
}
