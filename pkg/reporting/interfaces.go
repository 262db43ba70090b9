package reporting

import (
	"github.com/ducminhle1904/ga-solver/pkg/orchestrator"
)

// Package reporting provides output generation for solver runs

// ConsoleReporter defines interface for console output
type ConsoleReporter interface {
	orchestrator.Observer
	PrintKnapsackResult(res *orchestrator.KnapsackRunResult)
	PrintTSPResult(res *orchestrator.TSPRunResult)
}

// FileReporter defines interface for file output
type FileReporter interface {
	WriteKnapsackCSV(res *orchestrator.KnapsackRunResult, path string) error
	WriteTSPCSV(res *orchestrator.TSPRunResult, path string) error
	WriteKnapsackXLSX(res *orchestrator.KnapsackRunResult, path string) error
	WriteTSPXLSX(res *orchestrator.TSPRunResult, path string) error
}

// JSONFormatter defines interface for JSON output
type JSONFormatter interface {
	FormatKnapsackSummary(res *orchestrator.KnapsackRunResult) ([]byte, error)
	FormatTSPSummary(res *orchestrator.TSPRunResult) ([]byte, error)
}

// PathManager defines interface for output path management
type PathManager interface {
	GetDefaultOutputDir(problem, label string) string
	EnsureDirectoryExists(path string) error
}

// Reporter combines all reporting interfaces
type Reporter interface {
	ConsoleReporter
	FileReporter
	JSONFormatter
	PathManager
}

// ExcelStyles holds Excel formatting styles
type ExcelStyles struct {
	HeaderStyle    int
	BaseStyle      int
	DecimalStyle   int
	PercentStyle   int
	SelectedStyle  int
	SummaryStyle   int
	HighlightStyle int
}

// ReportingConfig holds configuration for reporting
type ReportingConfig struct {
	EnableConsole   bool
	EnableFiles     bool
	OutputDirectory string
	ExcelEnabled    bool
	CSVEnabled      bool
	JSONEnabled     bool
}

// Output file names inside the output directory
const (
	HistoryCSVFile    = "history.csv"
	SummaryJSONFile   = "summary.json"
	KnapsackExcelFile = "knapsack.xlsx"
	TSPExcelFile      = "tsp.xlsx"
)
