package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ducminhle1904/ga-solver/pkg/config"
)

// DefaultPathManager implements path management functionality
type DefaultPathManager struct{}

// NewDefaultPathManager creates a new path manager
func NewDefaultPathManager() *DefaultPathManager {
	return &DefaultPathManager{}
}

// GetDefaultOutputDir returns results/<problem>_<label>
func (p *DefaultPathManager) GetDefaultOutputDir(problem, label string) string {
	pr := strings.ToLower(strings.TrimSpace(problem))
	l := strings.ToLower(strings.TrimSpace(label))
	if pr == "" {
		pr = "unknown"
	}
	if l == "" {
		l = "random"
	}

	return filepath.Join(config.ResultsDir, fmt.Sprintf("%s_%s", pr, l))
}

// EnsureDirectoryExists creates the parent directory of path
func (p *DefaultPathManager) EnsureDirectoryExists(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// RunLabel derives a label from the seed, "random" when unseeded
func RunLabel(seed int64) string {
	if seed == 0 {
		return "random"
	}
	return fmt.Sprintf("seed%d", seed)
}

// Package-level convenience function
func DefaultOutputDir(problem, label string) string {
	return NewDefaultPathManager().GetDefaultOutputDir(problem, label)
}
