package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ducminhle1904/ga-solver/pkg/optimization"
)

// Logger writes a solver run log to a file
type Logger struct {
	problem string
	label   string
	logFile *os.File
	logger  *log.Logger
	mu      sync.Mutex
	logPath string
}

// LogLevel represents different types of log entries
type LogLevel string

const (
	LogLevelInfo       LogLevel = "INFO"
	LogLevelWarning    LogLevel = "WARN"
	LogLevelError      LogLevel = "ERROR"
	LogLevelGeneration LogLevel = "GEN"
	LogLevelResult     LogLevel = "RESULT"
)

const timeLayout = "2006-01-02 15:04:05"

// NewLogger opens <logDir>/<problem>_<label>_<date>.log in append mode.
// An empty logDir defaults to "logs".
func NewLogger(logDir, problem, label string) (*Logger, error) {
	if logDir == "" {
		logDir = "logs"
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s_%s.log", problem, label, time.Now().Format("2006-01-02"))
	logPath := filepath.Join(logDir, filename)

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := &Logger{
		problem: problem,
		label:   label,
		logFile: file,
		logger:  log.New(file, "", 0),
		logPath: logPath,
	}

	l.writeSessionHeader()

	return l, nil
}

func (l *Logger) writeSessionHeader() {
	l.mu.Lock()
	defer l.mu.Unlock()

	header := fmt.Sprintf(`
================================================================================
🚀 %s RUN STARTED
================================================================================
Label: %s
Started: %s
Log File: %s
================================================================================
`, strings.ToUpper(l.problem), l.label, time.Now().Format(timeLayout), filepath.Base(l.logPath))

	l.logger.Print(header)
}

// Log writes a formatted log entry with the specified level
func (l *Logger) Log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	message := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] [%s] %s", time.Now().Format(timeLayout), level, message)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(LogLevelInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.Log(LogLevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(LogLevelError, format, args...)
}

// LogGeneration writes one line per generation. detail is appended verbatim
// (the best genes or tour order).
func (l *Logger) LogGeneration(stats optimization.GenerationStats, detail string) {
	line := fmt.Sprintf("Generation %d: best=%.2f mean=%.2f std=%.2f worst=%.2f",
		stats.Generation, stats.Best, stats.Mean, stats.StdDev, stats.Worst)
	if detail != "" {
		line += " " + detail
	}
	l.Log(LogLevelGeneration, "%s", line)
}

// LogKnapsackResult logs the comparison between the GA and the exact optimum
func (l *Logger) LogKnapsackResult(gaFitness, optimum int, gap float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logger.Printf(`
[%s] [RESULT] ==================== KNAPSACK RESULT ====================
🧬 Genetic Algorithm Fitness: %d
🎯 DP Optimal Value: %d
📉 Optimality Gap: %.2f%%
=================================================================`,
		time.Now().Format(timeLayout), gaFitness, optimum, gap*100)
}

// LogTSPResult logs the best tour of one run
func (l *Logger) LogTSPResult(run, generations int, distance float64, order []int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logger.Printf(`
[%s] [RESULT] ==================== TSP RUN %d ====================
🔁 Generations: %d
📏 Shortest Distance: %.2f
🗺️  Tour: %v
=============================================================`,
		time.Now().Format(timeLayout), run, generations, distance, order)
}

// LogError logs error with context
func (l *Logger) LogError(context string, err error) {
	l.Error("%s: %v", context, err)
}

// Close writes the session footer and closes the log file
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile == nil {
		return nil
	}

	l.logger.Printf(`
================================================================================
🛑 %s RUN ENDED
================================================================================
Ended: %s
================================================================================

`, strings.ToUpper(l.problem), time.Now().Format(timeLayout))

	err := l.logFile.Close()
	l.logFile = nil
	return err
}

// GetLogPath returns the log file path
func (l *Logger) GetLogPath() string {
	return l.logPath
}
