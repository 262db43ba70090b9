package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ducminhle1904/ga-solver/pkg/orchestrator"
)

// DefaultCSVReporter writes per-generation history as CSV
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

// WriteKnapsackCSV writes one row per generation followed by a summary row.
// A path ending in .xlsx is delegated to the Excel writer.
func (r *DefaultCSVReporter) WriteKnapsackCSV(res *orchestrator.KnapsackRunResult, path string) error {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return WriteKnapsackXLSX(res, path)
	}

	header := []string{"Generation", "Best_Fitness", "Mean_Fitness", "Std_Dev", "Worst_Fitness", "Best_Genes"}
	rows := make([][]string, 0, len(res.History)+1)
	for _, rec := range res.History {
		rows = append(rows, []string{
			strconv.Itoa(rec.Generation),
			fmt.Sprintf("%.0f", rec.Best),
			fmt.Sprintf("%.4f", rec.Stats.Mean),
			fmt.Sprintf("%.4f", rec.Stats.StdDev),
			fmt.Sprintf("%.0f", rec.Stats.Worst),
			rec.Genes,
		})
	}

	summary := make([]string, len(header))
	summary[len(header)-1] = fmt.Sprintf("SUMMARY: ga_fitness=%d; dp_optimum=%d; strategy=%s; gap=%.4f; generations=%d",
		res.Best.Fitness(), res.Exact.MaxValue, res.Strategy, res.Gap, len(res.History))
	rows = append(rows, summary)

	return writeCSV(path, header, rows)
}

// WriteTSPCSV writes one row per generation of every run followed by a summary row
func (r *DefaultCSVReporter) WriteTSPCSV(res *orchestrator.TSPRunResult, path string) error {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return WriteTSPXLSX(res, path)
	}

	header := []string{"Run", "Generation", "Shortest_Distance", "Mean_Distance", "Std_Dev", "Longest_Distance", "Best_Order"}
	var rows [][]string
	for _, run := range res.Runs {
		for _, rec := range run.History {
			rows = append(rows, []string{
				strconv.Itoa(rec.Run),
				strconv.Itoa(rec.Generation),
				fmt.Sprintf("%.4f", rec.Best),
				fmt.Sprintf("%.4f", rec.Stats.Mean),
				fmt.Sprintf("%.4f", rec.Stats.StdDev),
				fmt.Sprintf("%.4f", rec.Stats.Worst),
				joinOrder(rec.Order),
			})
		}
	}

	summary := make([]string, len(header))
	summary[len(header)-1] = fmt.Sprintf("SUMMARY: best_run=%d; shortest_distance=%.4f; runs=%d; order=%s",
		res.BestRun, res.Best.TotalDistance(), len(res.Runs), joinOrder(res.Best.Order()))
	rows = append(rows, summary)

	return writeCSV(path, header, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

func joinOrder(order []int) string {
	parts := make([]string, len(order))
	for i, id := range order {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, "-")
}

// Package-level convenience functions
func WriteKnapsackCSV(res *orchestrator.KnapsackRunResult, path string) error {
	return NewDefaultCSVReporter().WriteKnapsackCSV(res, path)
}

func WriteTSPCSV(res *orchestrator.TSPRunResult, path string) error {
	return NewDefaultCSVReporter().WriteTSPCSV(res, path)
}
