package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ducminhle1904/ga-solver/pkg/config"
	"github.com/ducminhle1904/ga-solver/pkg/orchestrator"
	"github.com/ducminhle1904/ga-solver/pkg/types"
)

// KnapsackSummary is the JSON form of a knapsack run
type KnapsackSummary struct {
	Problem     string                 `json:"problem"`
	Config      *config.KnapsackConfig `json:"config"`
	Items       []types.Item           `json:"items"`
	Capacity    int                    `json:"capacity"`
	Generations int                    `json:"generations"`
	GA          SelectionSummary       `json:"genetic_algorithm"`
	Exact       SelectionSummary       `json:"exact"`
	Strategy    string                 `json:"strategy"`
	Gap         float64                `json:"optimality_gap"`
	DurationMS  int64                  `json:"duration_ms"`
}

// SelectionSummary describes one knapsack selection. Items are 0-based indices.
type SelectionSummary struct {
	Value         int   `json:"value"`
	Weight        int   `json:"weight"`
	SelectedItems []int `json:"selected_items"`
}

// TSPSummary is the JSON form of a TSP run
type TSPSummary struct {
	Problem      string             `json:"problem"`
	Config       *config.TSPConfig  `json:"config"`
	Cities       []types.Coordinate `json:"cities"`
	Runs         []TSPRunSummary    `json:"runs"`
	BestRun      int                `json:"best_run"`
	BestDistance float64            `json:"best_distance"`
	BestOrder    []int              `json:"best_order"`
	DurationMS   int64              `json:"duration_ms"`
}

// TSPRunSummary describes one restart
type TSPRunSummary struct {
	Run         int     `json:"run"`
	Generations int     `json:"generations"`
	Distance    float64 `json:"distance"`
	Stagnation  int     `json:"stagnation"`
	Order       []int   `json:"order"`
}

// DefaultJSONFormatter implements JSON output functionality
type DefaultJSONFormatter struct{}

// NewDefaultJSONFormatter creates a new JSON formatter
func NewDefaultJSONFormatter() *DefaultJSONFormatter {
	return &DefaultJSONFormatter{}
}

// KnapsackSummaryOf builds the summary of a knapsack run
func KnapsackSummaryOf(res *orchestrator.KnapsackRunResult) KnapsackSummary {
	return KnapsackSummary{
		Problem:     orchestrator.ProblemKnapsack,
		Config:      res.Config,
		Items:       res.Items,
		Capacity:    res.Capacity,
		Generations: len(res.History),
		GA: SelectionSummary{
			Value:         res.Best.Fitness(),
			Weight:        res.Best.TotalWeight(),
			SelectedItems: res.Best.SelectedItems(),
		},
		Exact: SelectionSummary{
			Value:         res.Exact.MaxValue,
			Weight:        res.Exact.TotalWeight,
			SelectedItems: res.Exact.SelectedItems,
		},
		Strategy:   string(res.Strategy),
		Gap:        res.Gap,
		DurationMS: res.Duration.Milliseconds(),
	}
}

// TSPSummaryOf builds the summary of a TSP run
func TSPSummaryOf(res *orchestrator.TSPRunResult) TSPSummary {
	runs := make([]TSPRunSummary, len(res.Runs))
	for i, run := range res.Runs {
		runs[i] = TSPRunSummary{
			Run:         run.Run,
			Generations: run.Generations,
			Distance:    run.Best.TotalDistance(),
			Stagnation:  run.Stagnation,
			Order:       run.Best.Order(),
		}
	}

	return TSPSummary{
		Problem:      orchestrator.ProblemTSP,
		Config:       res.Config,
		Cities:       res.Cities,
		Runs:         runs,
		BestRun:      res.BestRun,
		BestDistance: res.Best.TotalDistance(),
		BestOrder:    res.Best.Order(),
		DurationMS:   res.Duration.Milliseconds(),
	}
}

// FormatKnapsackSummary formats a knapsack run as indented JSON
func (f *DefaultJSONFormatter) FormatKnapsackSummary(res *orchestrator.KnapsackRunResult) ([]byte, error) {
	return json.MarshalIndent(KnapsackSummaryOf(res), "", "  ")
}

// FormatTSPSummary formats a TSP run as indented JSON
func (f *DefaultJSONFormatter) FormatTSPSummary(res *orchestrator.TSPRunResult) ([]byte, error) {
	return json.MarshalIndent(TSPSummaryOf(res), "", "  ")
}

// PrintJSON prints data as indented JSON to stdout
func (f *DefaultJSONFormatter) PrintJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("❌ Failed to format JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// WriteJSON writes pre-formatted JSON to path, creating the directory if needed
func WriteJSON(data []byte, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
