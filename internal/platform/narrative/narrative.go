package narrative

import (
	"context"
	"fmt"

	"pulse/internal/domain/stats"
)

// Insights is the narrative text for the ranking tables.
type Insights struct {
	LowestInsight  string `json:"lowest_insight"`
	HighestInsight string `json:"highest_insight"`
}

// LeaderAdditions are the STOP/WELCOME lists the deterministic assembler
// leaves empty.
type LeaderAdditions struct {
	Stop    []string `json:"stop"`
	Welcome []string `json:"welcome"`
}

// Generator produces narrative prose for an assembled report. Calls are
// independent and side-effect free, so a failed call can be retried without
// re-running aggregation. Implementations must be safe for concurrent use.
type Generator interface {
	Insights(ctx context.Context, result stats.Result) (Insights, error)
	LeaderAdditions(ctx context.Context, department string, result stats.Result) (LeaderAdditions, error)
}

// Static is the deterministic fallback generator used when no narrative
// backend is configured. The report stays useful without prose.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

func (s *Static) Insights(_ context.Context, result stats.Result) (Insights, error) {
	var insights Insights
	if len(result.Lowest3) > 0 {
		insights.LowestInsight = fmt.Sprintf(
			"Najniżej oceniony obszar to %s (%.2f / 5); od niego warto zacząć działania naprawcze.",
			result.Lowest3[0].Area, result.Lowest3[0].Average)
	}
	if len(result.Highest3) > 0 {
		insights.HighestInsight = fmt.Sprintf(
			"Najwyżej oceniony obszar to %s (%.2f / 5); stanowi mocną stronę organizacji.",
			result.Highest3[0].Area, result.Highest3[0].Average)
	}
	return insights, nil
}

func (s *Static) LeaderAdditions(_ context.Context, _ string, _ stats.Result) (LeaderAdditions, error) {
	return LeaderAdditions{Stop: []string{}, Welcome: []string{}}, nil
}
