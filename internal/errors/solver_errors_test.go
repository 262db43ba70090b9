package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/ducminhle1904/ga-solver/pkg/data"
	"github.com/ducminhle1904/ga-solver/pkg/optimization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{"cancelled", fmt.Errorf("run: %w", context.Canceled), ErrorCategoryCancelled},
		{"deadline", context.DeadlineExceeded, ErrorCategoryCancelled},
		{"missing file", &os.PathError{Op: "open", Path: "x.csv", Err: os.ErrNotExist}, ErrorCategoryInput},
		{"empty csv", fmt.Errorf("%w in items.csv", data.ErrNoRows), ErrorCategoryInput},
		{"bad rate", fmt.Errorf("%w: mutation rate = 2", optimization.ErrInvalidRate), ErrorCategoryConfiguration},
		{"bad strategy", optimization.ErrUnknownStrategy, ErrorCategoryConfiguration},
		{"negative capacity", optimization.ErrNegativeCapacity, ErrorCategoryValidation},
		{"duplicate city", fmt.Errorf("%w: 3", optimization.ErrDuplicateCity), ErrorCategoryValidation},
		{"path mismatch", optimization.ErrPathMismatch, ErrorCategorySolver},
		{"anything else", stderrors.New("boom"), ErrorCategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CategorizeError(tt.err, "solver", "run")
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Category)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.Nil(t, CategorizeError(nil, "solver", "run"))
}

func TestCategorizeError_KeepsExistingSolverError(t *testing.T) {
	original := NewValidationError("config", "load", "bad")
	wrapped := fmt.Errorf("outer: %w", original)

	assert.Same(t, original, CategorizeError(wrapped, "cli", "main"))
}

func TestSolverError_Format(t *testing.T) {
	err := NewInputError("data", "load items", stderrors.New("no such file"))
	assert.Equal(t, "[INPUT:data] load items: operation failed: no such file", err.Error())

	plain := NewFatalError("cli", "start", "cannot create output dir")
	assert.Equal(t, "[FATAL:cli] start: cannot create output dir", plain.Error())
	assert.Nil(t, plain.Unwrap())
}

func TestSolverError_FatalAndExitCode(t *testing.T) {
	tests := []struct {
		category ErrorCategory
		fatal    bool
		exit     int
	}{
		{ErrorCategoryFatal, true, 1},
		{ErrorCategoryConfiguration, true, 2},
		{ErrorCategoryValidation, true, 2},
		{ErrorCategoryInput, true, 2},
		{ErrorCategorySolver, false, 1},
		{ErrorCategoryReporting, false, 1},
		{ErrorCategoryCancelled, false, 130},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			err := NewSolverError(tt.category, "c", "op", "msg")
			assert.Equal(t, tt.fatal, err.IsFatal())
			assert.Equal(t, tt.exit, err.ExitCode())
		})
	}
}

func TestWrapErrorNil(t *testing.T) {
	assert.Nil(t, WrapError(nil, ErrorCategorySolver, "c", "op"))
}

func TestWithContext(t *testing.T) {
	err := (&SolverError{Category: ErrorCategorySolver}).WithContext("generation", 12)
	assert.Equal(t, 12, err.Context["generation"])
}

func TestErrorStats(t *testing.T) {
	stats := NewErrorStats(2)
	assert.Equal(t, 0.0, stats.GetErrorRate(ErrorCategoryInput))

	stats.RecordError(NewInputError("data", "load", stderrors.New("a")))
	stats.RecordError(NewReportingError("excel", "save", stderrors.New("b")))
	stats.RecordError(NewInputError("data", "load", stderrors.New("c")))

	assert.Equal(t, 3, stats.TotalErrors)
	assert.Len(t, stats.RecentErrors, 2)
	assert.InDelta(t, 2.0/3.0, stats.GetErrorRate(ErrorCategoryInput), 1e-9)
}
