package reporting

import (
	"encoding/json"
	"path/filepath"

	"github.com/ducminhle1904/ga-solver/pkg/config"
	"github.com/ducminhle1904/ga-solver/pkg/orchestrator"
)

// DefaultReporter implements the complete Reporter interface
type DefaultReporter struct {
	*DefaultConsoleReporter
	csv   *DefaultCSVReporter
	excel *DefaultExcelReporter
	json  *DefaultJSONFormatter
	paths *DefaultPathManager
}

// NewDefaultReporter creates a new default reporter with all functionality
func NewDefaultReporter() *DefaultReporter {
	return NewDefaultReporterWithConsole(NewDefaultConsoleReporter())
}

// NewDefaultReporterWithConsole uses the given console reporter for console output
func NewDefaultReporterWithConsole(console *DefaultConsoleReporter) *DefaultReporter {
	return &DefaultReporter{
		DefaultConsoleReporter: console,
		csv:                    NewDefaultCSVReporter(),
		excel:                  NewDefaultExcelReporter(),
		json:                   NewDefaultJSONFormatter(),
		paths:                  NewDefaultPathManager(),
	}
}

// File output methods
func (r *DefaultReporter) WriteKnapsackCSV(res *orchestrator.KnapsackRunResult, path string) error {
	return r.csv.WriteKnapsackCSV(res, path)
}

func (r *DefaultReporter) WriteTSPCSV(res *orchestrator.TSPRunResult, path string) error {
	return r.csv.WriteTSPCSV(res, path)
}

func (r *DefaultReporter) WriteKnapsackXLSX(res *orchestrator.KnapsackRunResult, path string) error {
	return r.excel.WriteKnapsackXLSX(res, path)
}

func (r *DefaultReporter) WriteTSPXLSX(res *orchestrator.TSPRunResult, path string) error {
	return r.excel.WriteTSPXLSX(res, path)
}

// JSON methods
func (r *DefaultReporter) FormatKnapsackSummary(res *orchestrator.KnapsackRunResult) ([]byte, error) {
	return r.json.FormatKnapsackSummary(res)
}

func (r *DefaultReporter) FormatTSPSummary(res *orchestrator.TSPRunResult) ([]byte, error) {
	return r.json.FormatTSPSummary(res)
}

// Path management methods
func (r *DefaultReporter) GetDefaultOutputDir(problem, label string) string {
	return r.paths.GetDefaultOutputDir(problem, label)
}

func (r *DefaultReporter) EnsureDirectoryExists(path string) error {
	return r.paths.EnsureDirectoryExists(path)
}

// ReportingManager provides a high-level interface for all reporting needs
type ReportingManager struct {
	reporter *DefaultReporter
	config   ReportingConfig
}

// NewReportingManager creates a new reporting manager with configuration
func NewReportingManager(cfg ReportingConfig) *ReportingManager {
	return NewReportingManagerWith(cfg, NewDefaultReporter())
}

// NewReportingManagerWith uses an explicit reporter
func NewReportingManagerWith(cfg ReportingConfig, reporter *DefaultReporter) *ReportingManager {
	return &ReportingManager{
		reporter: reporter,
		config:   cfg,
	}
}

// Reporter returns the underlying reporter
func (m *ReportingManager) Reporter() *DefaultReporter { return m.reporter }

func (m *ReportingManager) outputDir(problem, label string) string {
	if m.config.OutputDirectory != "" {
		return m.config.OutputDirectory
	}
	return m.reporter.GetDefaultOutputDir(problem, label)
}

// ReportKnapsack outputs a knapsack run according to configuration and
// returns the files written
func (m *ReportingManager) ReportKnapsack(res *orchestrator.KnapsackRunResult, label string) ([]string, error) {
	if m.config.EnableConsole {
		m.reporter.PrintKnapsackResult(res)
	}
	if !m.config.EnableFiles {
		return nil, nil
	}

	dir := m.outputDir(orchestrator.ProblemKnapsack, label)
	var written []string

	if m.config.CSVEnabled {
		path := filepath.Join(dir, HistoryCSVFile)
		if err := m.reporter.WriteKnapsackCSV(res, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if m.config.ExcelEnabled {
		path := filepath.Join(dir, KnapsackExcelFile)
		if err := m.reporter.WriteKnapsackXLSX(res, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if m.config.JSONEnabled {
		data, err := m.reporter.FormatKnapsackSummary(res)
		if err != nil {
			return written, err
		}
		paths, err := m.writeJSONOutputs(dir, data, res.Config)
		written = append(written, paths...)
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

// ReportTSP outputs a TSP run according to configuration and returns the files written
func (m *ReportingManager) ReportTSP(res *orchestrator.TSPRunResult, label string) ([]string, error) {
	if m.config.EnableConsole {
		m.reporter.PrintTSPResult(res)
	}
	if !m.config.EnableFiles {
		return nil, nil
	}

	dir := m.outputDir(orchestrator.ProblemTSP, label)
	var written []string

	if m.config.CSVEnabled {
		path := filepath.Join(dir, HistoryCSVFile)
		if err := m.reporter.WriteTSPCSV(res, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if m.config.ExcelEnabled {
		path := filepath.Join(dir, TSPExcelFile)
		if err := m.reporter.WriteTSPXLSX(res, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if m.config.JSONEnabled {
		data, err := m.reporter.FormatTSPSummary(res)
		if err != nil {
			return written, err
		}
		paths, err := m.writeJSONOutputs(dir, data, res.Config)
		written = append(written, paths...)
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

// writeJSONOutputs writes the run summary and the effective configuration
func (m *ReportingManager) writeJSONOutputs(dir string, summary []byte, cfg interface{}) ([]string, error) {
	var written []string

	summaryPath := filepath.Join(dir, SummaryJSONFile)
	if err := WriteJSON(summary, summaryPath); err != nil {
		return written, err
	}
	written = append(written, summaryPath)

	if cfg == nil {
		return written, nil
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return written, err
	}
	cfgPath := filepath.Join(dir, config.BestConfigFile)
	if err := WriteJSON(data, cfgPath); err != nil {
		return written, err
	}
	return append(written, cfgPath), nil
}
