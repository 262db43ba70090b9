package monitoring

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ducminhle1904/ga-solver/pkg/optimization"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordGeneration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RecordGeneration("knapsack", optimization.GenerationStats{Generation: 1, Best: 40, Mean: 22}, 3*time.Millisecond)
	m.RecordGeneration("knapsack", optimization.GenerationStats{Generation: 2, Best: 55, Mean: 30}, 2*time.Millisecond)

	assert.Equal(t, 55.0, testutil.ToFloat64(m.bestFitness.WithLabelValues("knapsack")))
	assert.Equal(t, 30.0, testutil.ToFloat64(m.meanFitness.WithLabelValues("knapsack")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.generation.WithLabelValues("knapsack")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.generationsTotal.WithLabelValues("knapsack")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.generationDuration))
}

func TestMetrics_GapAndErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.SetOptimalityGap(0.125)
	m.RecordError("INPUT")
	m.RecordError("INPUT")
	m.RecordError("SOLVER")

	assert.Equal(t, 0.125, testutil.ToFloat64(m.optimalityGap))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.errorsTotal.WithLabelValues("INPUT")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.errorsTotal))

	expected := `
# HELP knapsack_optimality_gap Relative gap between the GA result and the exact optimum
# TYPE knapsack_optimality_gap gauge
knapsack_optimality_gap 0.125
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "knapsack_optimality_gap"))
}

func TestMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) })
}

func TestDefaultMetrics(t *testing.T) {
	require.NotNil(t, Default())
	RecordError("TEST")
	assert.GreaterOrEqual(t, testutil.ToFloat64(Default().errorsTotal.WithLabelValues("TEST")), 1.0)
}

func TestServer_ExposesMetricsAndStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.RecordGeneration("tsp", optimization.GenerationStats{Generation: 5, Best: 321.5}, time.Millisecond)

	tracker := NewProgressTracker("tsp")
	tracker.Update(1, 5, 321.5)

	srv := httptest.NewServer(NewServer(":0", reg, tracker).Handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), `ga_best_fitness{problem="tsp"} 321.5`)

	resp, err = http.Get(srv.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status ProgressStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "running", status.Status)
	assert.Equal(t, "tsp", status.Problem)
	assert.Equal(t, 5, status.Generation)
}

func TestProgressTracker_States(t *testing.T) {
	tracker := NewProgressTracker("knapsack")
	assert.Equal(t, "running", tracker.Snapshot().Status)

	tracker.Finish()
	assert.Equal(t, "finished", tracker.Snapshot().Status)

	tracker.AddError("boom")
	rec := httptest.NewRecorder()
	tracker.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "boom")
}
