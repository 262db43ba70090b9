package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ducminhle1904/ga-solver/pkg/reporting"
	"github.com/stretchr/testify/assert"
)

func TestRun_WritesReports(t *testing.T) {
	dir := t.TempDir()
	code := run([]string{
		"-seed", "5", "-capacity", "10", "-items", "8", "-generations", "20",
		"-output-dir", dir, "-log-dir", "", "-silent", "-env", "",
	})
	assert.Equal(t, 0, code)

	for _, name := range []string{reporting.HistoryCSVFile, reporting.KnapsackExcelFile, reporting.SummaryJSONFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown flag", []string{"-bogus"}, 2},
		{"bad population", []string{"-population", "0", "-silent", "-console-only", "-log-dir", ""}, 2},
		{"bad strategy", []string{"-strategy", "greedy", "-silent", "-console-only", "-log-dir", ""}, 2},
		{"missing items file", []string{"-items-file", filepath.Join(os.TempDir(), "no-such-items.csv"), "-silent", "-console-only", "-log-dir", ""}, 2},
		{"version", []string{"-version"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.args))
		})
	}
}
