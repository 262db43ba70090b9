package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

var startTime = time.Now()

// ProgressTracker exposes the state of the running solver as JSON
type ProgressTracker struct {
	mu         sync.RWMutex
	problem    string
	run        int
	generation int
	best       float64
	lastUpdate time.Time
	finished   bool
	errors     []string
}

// ProgressStatus is the JSON body served by ProgressTracker
type ProgressStatus struct {
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	Problem    string    `json:"problem"`
	Run        int       `json:"run"`
	Generation int       `json:"generation"`
	Best       float64   `json:"best"`
	LastUpdate time.Time `json:"last_update"`
	Uptime     string    `json:"uptime"`
	Errors     []string  `json:"errors,omitempty"`
}

func NewProgressTracker(problem string) *ProgressTracker {
	return &ProgressTracker{
		problem: problem,
		errors:  make([]string, 0),
	}
}

// Update records the latest generation
func (p *ProgressTracker) Update(run, generation int, best float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.run = run
	p.generation = generation
	p.best = best
	p.lastUpdate = time.Now()
}

// Finish marks the run as complete
func (p *ProgressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finished = true
}

// AddError records an error message
func (p *ProgressTracker) AddError(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errors = append(p.errors, msg)
}

// Snapshot returns the current status
func (p *ProgressTracker) Snapshot() ProgressStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()

	status := "running"
	if p.finished {
		status = "finished"
	}
	if len(p.errors) > 0 {
		status = "failed"
	}

	errs := make([]string, len(p.errors))
	copy(errs, p.errors)

	return ProgressStatus{
		Status:     status,
		Timestamp:  time.Now(),
		Problem:    p.problem,
		Run:        p.run,
		Generation: p.generation,
		Best:       p.best,
		LastUpdate: p.lastUpdate,
		Uptime:     time.Since(startTime).String(),
		Errors:     errs,
	}
}

func (p *ProgressTracker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := p.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	if status.Status == "failed" {
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(status)
}
