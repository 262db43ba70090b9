package reporting

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ducminhle1904/ga-solver/pkg/orchestrator"
	"github.com/ducminhle1904/ga-solver/pkg/types"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DefaultConsoleReporter prints generation progress and run summaries
type DefaultConsoleReporter struct {
	out     io.Writer
	every   int
	lastRun int
}

// NewDefaultConsoleReporter creates a console reporter writing to stdout
// and printing every generation
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return NewConsoleReporterTo(os.Stdout, 1)
}

// NewConsoleReporterTo creates a console reporter writing to out. Progress
// lines are printed every `every` generations; 0 disables them.
func NewConsoleReporterTo(out io.Writer, every int) *DefaultConsoleReporter {
	return &DefaultConsoleReporter{out: out, every: every, lastRun: 1}
}

// OnGeneration prints one progress line
func (r *DefaultConsoleReporter) OnGeneration(problem string, rec orchestrator.GenerationRecord) {
	if rec.Run != r.lastRun {
		fmt.Fprintf(r.out, "\n🔁 Restart: run %d\n", rec.Run)
		r.lastRun = rec.Run
	}
	if r.every <= 0 || rec.Generation%r.every != 0 {
		return
	}

	switch problem {
	case orchestrator.ProblemKnapsack:
		fmt.Fprintf(r.out, "Generation %d: Best Fitness = %.0f, Genes = [%s]\n", rec.Generation, rec.Best, rec.Genes)
	case orchestrator.ProblemTSP:
		fmt.Fprintf(r.out, "Generation %d: Shortest Distance - %.2f\n", rec.Generation, rec.Best)
	default:
		fmt.Fprintf(r.out, "Generation %d: Best = %.4f\n", rec.Generation, rec.Best)
	}
}

func (r *DefaultConsoleReporter) newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle(title)
	t.SetStyle(table.StyleRounded)
	return t
}

// PrintKnapsackResult prints the GA solution, the exact solution and the comparison
func (r *DefaultConsoleReporter) PrintKnapsackResult(res *orchestrator.KnapsackRunResult) {
	fmt.Fprintln(r.out)

	t := r.newTable("KNAPSACK RUN")
	t.AppendRows([]table.Row{
		{"📦 Items", len(res.Items)},
		{"⚖️  Capacity", res.Capacity},
		{"👥 Population", res.Config.PopulationSize},
		{"🧬 Mutation Rate", fmt.Sprintf("%.3f", res.Config.MutationRate)},
		{"🔀 Crossover Rate", fmt.Sprintf("%.3f", res.Config.CrossoverRate)},
		{"🔁 Generations", len(res.History)},
		{"🎲 Seed", seedString(res.Config.Seed)},
		{"⏱️  Duration", res.Duration.Round(time.Millisecond).String()},
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 18, WidthMax: 18, Align: text.AlignLeft},
		{Number: 2, WidthMin: 20, WidthMax: 40, Align: text.AlignLeft},
	})
	t.Render()
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, "Final Best Solution from Genetic Algorithm:")
	fmt.Fprintf(r.out, "Fitness = %d\n", res.Best.Fitness())
	r.renderItems(res.Items, res.Best.SelectedItems())

	fmt.Fprintln(r.out, "\nOptimal Solution using Dynamic Programming:")
	fmt.Fprintf(r.out, "Max Value = %d (%s)\n", res.Exact.MaxValue, res.Strategy)
	r.renderItems(res.Items, res.Exact.SelectedItems)

	fmt.Fprintln(r.out, "\nComparison:")
	fmt.Fprintf(r.out, "Genetic Algorithm Fitness: %d, DP Optimal Value: %d\n", res.Best.Fitness(), res.Exact.MaxValue)
	fmt.Fprintf(r.out, "Optimality Gap: %.2f%%\n", res.Gap*100)
	fmt.Fprintln(r.out)
	r.renderComparison(res)
}

// renderItems lists selected items with 1-based item numbers
func (r *DefaultConsoleReporter) renderItems(items []types.Item, selected []int) {
	for _, idx := range selected {
		fmt.Fprintf(r.out, "Item %d: %s\n", idx+1, items[idx])
	}
}

// renderComparison shows every item with the GA and DP selections side by side
func (r *DefaultConsoleReporter) renderComparison(res *orchestrator.KnapsackRunResult) {
	inGA := indexSet(res.Best.SelectedItems())
	inDP := indexSet(res.Exact.SelectedItems)

	t := r.newTable("ITEMS")
	t.AppendHeader(table.Row{"Item", "Weight", "Value", "GA", "DP"})
	for i, item := range res.Items {
		t.AppendRow(table.Row{i + 1, item.Weight, item.Value, mark(inGA[i]), mark(inDP[i])})
	}
	t.AppendFooter(table.Row{"Total",
		fmt.Sprintf("%d / %d", res.Best.TotalWeight(), res.Exact.TotalWeight),
		fmt.Sprintf("%d / %d", res.Best.Fitness(), res.Exact.MaxValue), "", ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignCenter},
		{Number: 5, Align: text.AlignCenter},
	})
	t.Render()
}

func indexSet(indices []int) map[int]bool {
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		set[i] = true
	}
	return set
}

func mark(selected bool) string {
	if selected {
		return "✔"
	}
	return ""
}

// PrintTSPResult prints one line per run and the best tour
func (r *DefaultConsoleReporter) PrintTSPResult(res *orchestrator.TSPRunResult) {
	fmt.Fprintln(r.out, "\nMax generations reached. Evolution stopped.")
	fmt.Fprintln(r.out)

	t := r.newTable("TSP RUNS")
	t.AppendHeader(table.Row{"Run", "Generations", "Shortest Distance", "Stagnation"})
	for _, run := range res.Runs {
		marker := ""
		if run.Run == res.BestRun {
			marker = " ⭐"
		}
		t.AppendRow(table.Row{run.Run, run.Generations, fmt.Sprintf("%.2f%s", run.Best.TotalDistance(), marker), run.Stagnation})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()
	fmt.Fprintln(r.out)

	tour := r.newTable(fmt.Sprintf("BEST TOUR (%.2f)", res.Best.TotalDistance()))
	tour.AppendHeader(table.Row{"#", "City", "X", "Y"})
	for i, c := range res.Best.Locations() {
		tour.AppendRow(table.Row{i + 1, c.ID, fmt.Sprintf("%.2f", c.X), fmt.Sprintf("%.2f", c.Y)})
	}
	tour.Render()

	fmt.Fprintf(r.out, "Order: %s\n", formatOrder(res.Best.Order()))
}

func seedString(seed int64) string {
	if seed == 0 {
		return "random"
	}
	return fmt.Sprintf("%d", seed)
}

func formatOrder(order []int) string {
	parts := make([]string, len(order))
	for i, id := range order {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, " → ")
}

// Package-level convenience functions
func PrintKnapsackResult(res *orchestrator.KnapsackRunResult) {
	NewDefaultConsoleReporter().PrintKnapsackResult(res)
}

func PrintTSPResult(res *orchestrator.TSPRunResult) {
	NewDefaultConsoleReporter().PrintTSPResult(res)
}
