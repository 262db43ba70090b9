package orchestrator

import (
	"context"
	"time"

	"github.com/ducminhle1904/ga-solver/internal/monitoring"
)

// RunnerOption configures a runner
type RunnerOption func(*runnerBase)

// WithObserver adds an observer notified after every generation
func WithObserver(o Observer) RunnerOption {
	return func(r *runnerBase) {
		r.observers = append(r.observers, o)
	}
}

// WithMetrics records every generation on m
func WithMetrics(m *monitoring.Metrics) RunnerOption {
	return func(r *runnerBase) {
		r.metrics = m
	}
}

type runnerBase struct {
	observers MultiObserver
	metrics   *monitoring.Metrics
}

func newRunnerBase(opts []RunnerOption) runnerBase {
	var b runnerBase
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *runnerBase) notify(problem string, rec GenerationRecord) {
	if b.metrics != nil {
		b.metrics.RecordGeneration(problem, rec.Stats, rec.Elapsed)
	}
	b.observers.OnGeneration(problem, rec)
}

// pause waits delayMS milliseconds or until ctx is done
func pause(ctx context.Context, delayMS int) error {
	if delayMS <= 0 {
		return nil
	}
	timer := time.NewTimer(time.Duration(delayMS) * time.Millisecond)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
