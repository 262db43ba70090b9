package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/ducminhle1904/ga-solver/pkg/data"
	"github.com/ducminhle1904/ga-solver/pkg/optimization"
)

// ErrorCategory represents the kinds of failure a solver run can end with
type ErrorCategory string

const (
	// Errors that stop the run before any generation is evolved
	ErrorCategoryFatal         ErrorCategory = "FATAL"
	ErrorCategoryConfiguration ErrorCategory = "CONFIG"
	ErrorCategoryValidation    ErrorCategory = "VALIDATION"
	ErrorCategoryInput         ErrorCategory = "INPUT"

	// Errors raised while running or reporting
	ErrorCategorySolver    ErrorCategory = "SOLVER"
	ErrorCategoryReporting ErrorCategory = "REPORTING"
	ErrorCategoryCancelled ErrorCategory = "CANCELLED"
	ErrorCategoryUnknown   ErrorCategory = "UNKNOWN"
)

// SolverError represents a categorized error with context
type SolverError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Underlying error
	Context    map[string]interface{}
}

// Error implements the error interface
func (e *SolverError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *SolverError) Unwrap() error {
	return e.Underlying
}

// IsFatal reports whether the error comes from bad settings or input rather
// than from the run itself
func (e *SolverError) IsFatal() bool {
	switch e.Category {
	case ErrorCategoryFatal, ErrorCategoryConfiguration, ErrorCategoryValidation, ErrorCategoryInput:
		return true
	default:
		return false
	}
}

// ExitCode maps the category to a process exit status
func (e *SolverError) ExitCode() int {
	switch e.Category {
	case ErrorCategoryConfiguration, ErrorCategoryValidation, ErrorCategoryInput:
		return 2
	case ErrorCategoryCancelled:
		return 130
	default:
		return 1
	}
}

// NewSolverError creates a new categorized error
func NewSolverError(category ErrorCategory, component, operation, message string) *SolverError {
	return &SolverError{
		Category:  category,
		Component: component,
		Operation: operation,
		Message:   message,
		Context:   make(map[string]interface{}),
	}
}

// WrapError wraps an existing error with solver context
func WrapError(err error, category ErrorCategory, component, operation string) *SolverError {
	if err == nil {
		return nil
	}

	return &SolverError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Message:    "operation failed",
		Underlying: err,
		Context:    make(map[string]interface{}),
	}
}

// WithContext adds context information to the error
func (e *SolverError) WithContext(key string, value interface{}) *SolverError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// CategorizeError maps an arbitrary error onto a category using the
// package sentinels it wraps
func CategorizeError(err error, component, operation string) *SolverError {
	if err == nil {
		return nil
	}

	var solverErr *SolverError
	if stderrors.As(err, &solverErr) {
		return solverErr
	}

	switch {
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return WrapError(err, ErrorCategoryCancelled, component, operation)

	case stderrors.Is(err, fs.ErrNotExist), stderrors.Is(err, fs.ErrPermission), stderrors.Is(err, data.ErrNoRows):
		return WrapError(err, ErrorCategoryInput, component, operation)

	case stderrors.Is(err, optimization.ErrInvalidPopulationSize),
		stderrors.Is(err, optimization.ErrInvalidRate),
		stderrors.Is(err, optimization.ErrUnknownStrategy):
		return WrapError(err, ErrorCategoryConfiguration, component, operation)

	case stderrors.Is(err, optimization.ErrNegativeCapacity),
		stderrors.Is(err, optimization.ErrEmptyItems),
		stderrors.Is(err, optimization.ErrInvalidItem),
		stderrors.Is(err, optimization.ErrEmptyLocations),
		stderrors.Is(err, optimization.ErrDuplicateCity),
		stderrors.Is(err, optimization.ErrGeneLengthMismatch),
		stderrors.Is(err, optimization.ErrInvalidGene):
		return WrapError(err, ErrorCategoryValidation, component, operation)

	case stderrors.Is(err, optimization.ErrPathMismatch):
		return WrapError(err, ErrorCategorySolver, component, operation)
	}

	return WrapError(err, ErrorCategoryUnknown, component, operation)
}

// Common error constructors
func NewValidationError(component, operation, message string) *SolverError {
	return NewSolverError(ErrorCategoryValidation, component, operation, message)
}

func NewConfigurationError(component, operation string, err error) *SolverError {
	return WrapError(err, ErrorCategoryConfiguration, component, operation)
}

func NewInputError(component, operation string, err error) *SolverError {
	return WrapError(err, ErrorCategoryInput, component, operation)
}

func NewReportingError(component, operation string, err error) *SolverError {
	return WrapError(err, ErrorCategoryReporting, component, operation)
}

func NewFatalError(component, operation, message string) *SolverError {
	return NewSolverError(ErrorCategoryFatal, component, operation, message)
}

// ErrorStats tracks error statistics
type ErrorStats struct {
	TotalErrors      int
	ErrorsByCategory map[ErrorCategory]int
	RecentErrors     []*SolverError
	MaxRecentErrors  int
}

// NewErrorStats creates a new error statistics tracker
func NewErrorStats(maxRecentErrors int) *ErrorStats {
	return &ErrorStats{
		ErrorsByCategory: make(map[ErrorCategory]int),
		RecentErrors:     make([]*SolverError, 0, maxRecentErrors),
		MaxRecentErrors:  maxRecentErrors,
	}
}

// RecordError records an error in the statistics
func (es *ErrorStats) RecordError(err *SolverError) {
	es.TotalErrors++
	es.ErrorsByCategory[err.Category]++

	es.RecentErrors = append(es.RecentErrors, err)
	if len(es.RecentErrors) > es.MaxRecentErrors {
		es.RecentErrors = es.RecentErrors[1:]
	}
}

// GetErrorRate returns the share of errors in a category
func (es *ErrorStats) GetErrorRate(category ErrorCategory) float64 {
	if es.TotalErrors == 0 {
		return 0.0
	}
	return float64(es.ErrorsByCategory[category]) / float64(es.TotalErrors)
}
