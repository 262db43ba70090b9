package common

import (
	"context"
	"fmt"
	"io"
	"log"

	apperrors "github.com/ducminhle1904/ga-solver/internal/errors"
	"github.com/ducminhle1904/ga-solver/internal/logger"
	"github.com/ducminhle1904/ga-solver/internal/monitoring"
	"github.com/ducminhle1904/ga-solver/pkg/orchestrator"
	"github.com/ducminhle1904/ga-solver/pkg/reporting"
	"github.com/prometheus/client_golang/prometheus"
)

// Session wires the observers, run log, progress tracker and metrics of one
// command invocation
type Session struct {
	Problem string
	Label   string

	flags   *CommonFlags
	console *reporting.DefaultConsoleReporter
	fileLog *logger.Logger
	tracker *monitoring.ProgressTracker
	metrics *monitoring.Metrics
}

// NewSession opens the run log and, when -metrics-addr is set, starts the
// metrics server. The server stops when ctx is done.
func NewSession(ctx context.Context, problem, label string, flags *CommonFlags) (*Session, error) {
	every := *flags.ProgressEvery
	if *flags.Silent {
		every = 0
		log.SetOutput(io.Discard)
	}

	s := &Session{
		Problem: problem,
		Label:   label,
		flags:   flags,
		console: reporting.NewConsoleReporterTo(DefaultLogger.out, every),
		tracker: monitoring.NewProgressTracker(problem),
		metrics: monitoring.Default(),
	}

	if *flags.LogDir != "" {
		fl, err := logger.NewLogger(*flags.LogDir, problem, label)
		if err != nil {
			return nil, apperrors.NewFatalError("session", "open run log", err.Error())
		}
		s.fileLog = fl
		Debug("Run log: %s", fl.GetLogPath())
	}

	if addr := *flags.MetricsAddr; addr != "" {
		monitoring.Serve(ctx, monitoring.NewServer(addr, prometheus.DefaultGatherer, s.tracker))
	}

	return s, nil
}

// Observer fans each generation out to the console, the tracker and the run log
func (s *Session) Observer() orchestrator.Observer {
	observers := orchestrator.MultiObserver{
		s.console,
		orchestrator.ObserverFunc(func(_ string, rec orchestrator.GenerationRecord) {
			s.tracker.Update(rec.Run, rec.Generation, rec.Best)
		}),
	}

	if s.fileLog != nil {
		observers = append(observers, orchestrator.ObserverFunc(func(problem string, rec orchestrator.GenerationRecord) {
			detail := fmt.Sprintf("genes=[%s]", rec.Genes)
			if problem == orchestrator.ProblemTSP {
				detail = fmt.Sprintf("run=%d order=%v", rec.Run, rec.Order)
			}
			s.fileLog.LogGeneration(rec.Stats, detail)
		}))
	}

	return observers
}

// RunnerOptions returns the options every runner of this session is built with
func (s *Session) RunnerOptions() []orchestrator.RunnerOption {
	return []orchestrator.RunnerOption{
		orchestrator.WithObserver(s.Observer()),
		orchestrator.WithMetrics(s.metrics),
	}
}

// Reporting builds the reporting manager from the output flags
func (s *Session) Reporting() *reporting.ReportingManager {
	cfg := reporting.ReportingConfig{
		EnableConsole:   !*s.flags.Silent,
		EnableFiles:     !*s.flags.ConsoleOnly,
		OutputDirectory: *s.flags.OutputDir,
		ExcelEnabled:    true,
		CSVEnabled:      true,
		JSONEnabled:     true,
	}
	return reporting.NewReportingManagerWith(cfg, reporting.NewDefaultReporterWithConsole(s.console))
}

// LogKnapsackResult writes the final comparison to the run log
func (s *Session) LogKnapsackResult(res *orchestrator.KnapsackRunResult) {
	if s.fileLog != nil {
		s.fileLog.LogKnapsackResult(res.Best.Fitness(), res.Exact.MaxValue, res.Gap)
	}
}

// LogTSPResult writes every run to the run log
func (s *Session) LogTSPResult(res *orchestrator.TSPRunResult) {
	if s.fileLog == nil {
		return
	}
	for _, run := range res.Runs {
		s.fileLog.LogTSPResult(run.Run, run.Generations, run.Best.TotalDistance(), run.Best.Order())
	}
}

// Finish marks the run as complete for /status
func (s *Session) Finish() {
	s.tracker.Finish()
}

// Fail reports err everywhere the session writes to and returns the exit code
func (s *Session) Fail(err error, component, operation string) int {
	se := apperrors.CategorizeError(err, component, operation)
	s.tracker.AddError(se.Error())
	if s.fileLog != nil {
		s.fileLog.LogError(operation, se)
	}
	return reportFailure(se, s.metrics)
}

// Close closes the run log
func (s *Session) Close() {
	if s.fileLog != nil {
		if err := s.fileLog.Close(); err != nil {
			Warn("Failed to close run log: %v", err)
		}
	}
}

// Fail reports an error raised before a session exists and returns the exit code
func Fail(err error, component, operation string) int {
	return reportFailure(apperrors.CategorizeError(err, component, operation), monitoring.Default())
}

func reportFailure(se *apperrors.SolverError, metrics *monitoring.Metrics) int {
	metrics.RecordError(string(se.Category))
	Error("%v", se)
	return se.ExitCode()
}
