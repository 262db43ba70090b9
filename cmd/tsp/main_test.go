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
		"-seed", "5", "-cities", "6", "-generations", "15", "-population", "12", "-runs", "2",
		"-output-dir", dir, "-log-dir", "", "-silent", "-env", "",
	})
	assert.Equal(t, 0, code)

	for _, name := range []string{reporting.HistoryCSVFile, reporting.TSPExcelFile, reporting.SummaryJSONFile} {
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
		{"bad runs", []string{"-runs", "0", "-silent", "-console-only", "-log-dir", ""}, 2},
		{"bad mutation", []string{"-mutation", "2", "-silent", "-console-only", "-log-dir", ""}, 2},
		{"negative delay", []string{"-delay", "-1", "-silent", "-console-only", "-log-dir", ""}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.args))
		})
	}
}
