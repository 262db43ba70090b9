package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ducminhle1904/ga-solver/pkg/orchestrator"
	"github.com/ducminhle1904/ga-solver/pkg/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names
const (
	GenerationsSheet = "Generations"
	GASolutionSheet  = "GA Solution"
	DPSolutionSheet  = "DP Solution"
	ItemsSheet       = "Items"
	TourSheet        = "Tour"
	RunsSheet        = "Runs"
)

// DefaultExcelReporter implements Excel output functionality
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// WriteKnapsackXLSX writes the generation history, both selections and the item list
func (r *DefaultExcelReporter) WriteKnapsackXLSX(res *orchestrator.KnapsackRunResult, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	fx.SetSheetName(fx.GetSheetName(0), GenerationsSheet)
	fx.NewSheet(GASolutionSheet)
	fx.NewSheet(DPSolutionSheet)
	fx.NewSheet(ItemsSheet)

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeKnapsackGenerations(fx, res, styles); err != nil {
		return err
	}

	gaSelected := res.Best.SelectedItems()
	if err := r.writeSelectionSheet(fx, GASolutionSheet, res.Items, gaSelected, [][]interface{}{
		{"Fitness", res.Best.Fitness()},
		{"Total Weight", res.Best.TotalWeight()},
		{"Capacity", res.Capacity},
		{"Generations", len(res.History)},
	}, styles); err != nil {
		return err
	}

	if err := r.writeSelectionSheet(fx, DPSolutionSheet, res.Items, res.Exact.SelectedItems, [][]interface{}{
		{"Max Value", res.Exact.MaxValue},
		{"Total Weight", res.Exact.TotalWeight},
		{"Strategy", string(res.Strategy)},
		{"Optimality Gap", res.Gap},
	}, styles); err != nil {
		return err
	}

	if err := r.writeItemsSheet(fx, res, gaSelected, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

// WriteTSPXLSX writes the generation history of every run, the best tour and a run summary
func (r *DefaultExcelReporter) WriteTSPXLSX(res *orchestrator.TSPRunResult, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	fx.SetSheetName(fx.GetSheetName(0), GenerationsSheet)
	fx.NewSheet(TourSheet)
	fx.NewSheet(RunsSheet)

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeTSPGenerations(fx, res, styles); err != nil {
		return err
	}
	if err := r.writeTourSheet(fx, res, styles); err != nil {
		return err
	}
	if err := r.writeRunsSheet(fx, res, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *DefaultExcelReporter) createExcelStyles(fx *excelize.File) (ExcelStyles, error) {
	var styles ExcelStyles
	var err error

	thin := []excelize.Border{
		{Type: "left", Color: "E0E0E0", Style: 1},
		{Type: "right", Color: "E0E0E0", Style: 1},
		{Type: "bottom", Color: "E0E0E0", Style: 1},
	}

	// Header style - Dark blue background with white text
	styles.HeaderStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	styles.BaseStyle, err = fx.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
		Border: thin,
	})
	if err != nil {
		return styles, err
	}

	styles.DecimalStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 4, // #,##0.00
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
		Border: thin,
	})
	if err != nil {
		return styles, err
	}

	styles.PercentStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 10, // 0.00%
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
		Border: thin,
	})
	if err != nil {
		return styles, err
	}

	// Selected rows - light green
	styles.SelectedStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Color: "006100",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"C6EFCE"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
		Border: thin,
	})
	if err != nil {
		return styles, err
	}

	styles.SummaryStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 2},
			{Type: "right", Color: "000000", Style: 2},
			{Type: "top", Color: "000000", Style: 2},
			{Type: "bottom", Color: "000000", Style: 2},
		},
	})
	if err != nil {
		return styles, err
	}

	// Best run highlight - light yellow
	styles.HighlightStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFF2CC"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
		Border: thin,
	})
	if err != nil {
		return styles, err
	}

	return styles, nil
}

func (r *DefaultExcelReporter) writeHeaders(fx *excelize.File, sheet string, headers []string, styles ExcelStyles) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}
}

// writeRow writes values starting at column A; decimal columns get DecimalStyle
func (r *DefaultExcelReporter) writeRow(fx *excelize.File, sheet string, row int, values []interface{}, style int, decimalCols map[int]bool, styles ExcelStyles) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		fx.SetCellValue(sheet, cell, v)
		if decimalCols[i] {
			fx.SetCellStyle(sheet, cell, cell, styles.DecimalStyle)
		} else {
			fx.SetCellStyle(sheet, cell, cell, style)
		}
	}
}

func (r *DefaultExcelReporter) writeKnapsackGenerations(fx *excelize.File, res *orchestrator.KnapsackRunResult, styles ExcelStyles) error {
	sheet := GenerationsSheet
	fx.SetColWidth(sheet, "A", "A", 12)
	fx.SetColWidth(sheet, "B", "E", 14)
	fx.SetColWidth(sheet, "F", "F", 30)

	r.writeHeaders(fx, sheet, []string{"Generation", "Best Fitness", "Mean", "Std Dev", "Worst", "Best Genes"}, styles)

	decimals := map[int]bool{2: true, 3: true}
	for i, rec := range res.History {
		r.writeRow(fx, sheet, i+2, []interface{}{
			rec.Generation,
			int(rec.Best),
			rec.Stats.Mean,
			rec.Stats.StdDev,
			int(rec.Stats.Worst),
			rec.Genes,
		}, styles.BaseStyle, decimals, styles)
	}

	return fx.SetPanes(sheet, frozenHeader())
}

func (r *DefaultExcelReporter) writeSelectionSheet(fx *excelize.File, sheet string, items []types.Item, selected []int, summary [][]interface{}, styles ExcelStyles) error {
	fx.SetColWidth(sheet, "A", "C", 12)
	fx.SetColWidth(sheet, "E", "E", 18)
	fx.SetColWidth(sheet, "F", "F", 14)

	r.writeHeaders(fx, sheet, []string{"Item", "Weight", "Value"}, styles)
	for i, idx := range selected {
		if idx < 0 || idx >= len(items) {
			continue
		}
		r.writeRow(fx, sheet, i+2, []interface{}{idx + 1, items[idx].Weight, items[idx].Value}, styles.SelectedStyle, nil, styles)
	}

	// Summary block to the right of the item list
	for i, kv := range summary {
		row := i + 1
		label, _ := excelize.CoordinatesToCellName(5, row)
		value, _ := excelize.CoordinatesToCellName(6, row)
		fx.SetCellValue(sheet, label, kv[0])
		fx.SetCellStyle(sheet, label, label, styles.SummaryStyle)
		fx.SetCellValue(sheet, value, kv[1])
		if _, ok := kv[1].(float64); ok {
			fx.SetCellStyle(sheet, value, value, styles.PercentStyle)
		} else {
			fx.SetCellStyle(sheet, value, value, styles.BaseStyle)
		}
	}
	return nil
}

func (r *DefaultExcelReporter) writeItemsSheet(fx *excelize.File, res *orchestrator.KnapsackRunResult, gaSelected []int, styles ExcelStyles) error {
	sheet := ItemsSheet
	fx.SetColWidth(sheet, "A", "C", 10)
	fx.SetColWidth(sheet, "D", "E", 12)

	r.writeHeaders(fx, sheet, []string{"Item", "Weight", "Value", "GA", "DP"}, styles)

	inGA := indexSet(gaSelected)
	inDP := indexSet(res.Exact.SelectedItems)
	for i, it := range res.Items {
		style := styles.BaseStyle
		if inGA[i] && inDP[i] {
			style = styles.SelectedStyle
		}
		r.writeRow(fx, sheet, i+2, []interface{}{i + 1, it.Weight, it.Value, yesNo(inGA[i]), yesNo(inDP[i])}, style, nil, styles)
	}

	return fx.SetPanes(sheet, frozenHeader())
}

func (r *DefaultExcelReporter) writeTSPGenerations(fx *excelize.File, res *orchestrator.TSPRunResult, styles ExcelStyles) error {
	sheet := GenerationsSheet
	fx.SetColWidth(sheet, "A", "B", 12)
	fx.SetColWidth(sheet, "C", "F", 16)
	fx.SetColWidth(sheet, "G", "G", 40)

	r.writeHeaders(fx, sheet, []string{"Run", "Generation", "Shortest Distance", "Mean", "Std Dev", "Longest", "Best Order"}, styles)

	decimals := map[int]bool{2: true, 3: true, 4: true, 5: true}
	row := 2
	for _, run := range res.Runs {
		for _, rec := range run.History {
			r.writeRow(fx, sheet, row, []interface{}{
				rec.Run,
				rec.Generation,
				rec.Best,
				rec.Stats.Mean,
				rec.Stats.StdDev,
				rec.Stats.Worst,
				joinOrder(rec.Order),
			}, styles.BaseStyle, decimals, styles)
			row++
		}
	}

	return fx.SetPanes(sheet, frozenHeader())
}

func (r *DefaultExcelReporter) writeTourSheet(fx *excelize.File, res *orchestrator.TSPRunResult, styles ExcelStyles) error {
	sheet := TourSheet
	fx.SetColWidth(sheet, "A", "D", 12)
	fx.SetColWidth(sheet, "E", "E", 16)

	r.writeHeaders(fx, sheet, []string{"Stop", "City ID", "X", "Y", "Leg Distance"}, styles)

	locs := res.Best.Locations()
	for i, c := range locs {
		next := locs[(i+1)%len(locs)]
		r.writeRow(fx, sheet, i+2, []interface{}{i + 1, c.ID, c.X, c.Y, c.DistanceTo(next)},
			styles.BaseStyle, map[int]bool{2: true, 3: true, 4: true}, styles)
	}

	totalRow := len(locs) + 2
	label, _ := excelize.CoordinatesToCellName(1, totalRow)
	value, _ := excelize.CoordinatesToCellName(5, totalRow)
	fx.SetCellValue(sheet, label, "TOTAL")
	fx.SetCellStyle(sheet, label, label, styles.SummaryStyle)
	fx.SetCellValue(sheet, value, res.Best.TotalDistance())
	fx.SetCellStyle(sheet, value, value, styles.SummaryStyle)
	return nil
}

func (r *DefaultExcelReporter) writeRunsSheet(fx *excelize.File, res *orchestrator.TSPRunResult, styles ExcelStyles) error {
	sheet := RunsSheet
	fx.SetColWidth(sheet, "A", "D", 14)
	fx.SetColWidth(sheet, "E", "E", 40)

	r.writeHeaders(fx, sheet, []string{"Run", "Generations", "Distance", "Stagnation", "Order"}, styles)
	for i, run := range res.Runs {
		style := styles.BaseStyle
		if run.Run == res.BestRun {
			style = styles.HighlightStyle
		}
		r.writeRow(fx, sheet, i+2, []interface{}{
			run.Run,
			run.Generations,
			run.Best.TotalDistance(),
			run.Stagnation,
			joinOrder(run.Best.Order()),
		}, style, map[int]bool{2: true}, styles)
	}
	return nil
}

func frozenHeader() *excelize.Panes {
	return &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Package-level convenience functions
func WriteKnapsackXLSX(res *orchestrator.KnapsackRunResult, path string) error {
	return NewDefaultExcelReporter().WriteKnapsackXLSX(res, path)
}

func WriteTSPXLSX(res *orchestrator.TSPRunResult, path string) error {
	return NewDefaultExcelReporter().WriteTSPXLSX(res, path)
}
