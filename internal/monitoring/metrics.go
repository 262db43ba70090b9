package monitoring

import (
	"net/http"
	"time"

	"github.com/ducminhle1904/ga-solver/pkg/optimization"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the solver collectors registered on one registry
type Metrics struct {
	bestFitness        *prometheus.GaugeVec
	generation         *prometheus.GaugeVec
	meanFitness        *prometheus.GaugeVec
	optimalityGap      prometheus.Gauge
	generationsTotal   *prometheus.CounterVec
	errorsTotal        *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		// Progress metrics
		bestFitness: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ga_best_fitness",
				Help: "Best fitness of the current generation (tour length for tsp)",
			},
			[]string{"problem"},
		),
		generation: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ga_generation",
				Help: "Current generation number",
			},
			[]string{"problem"},
		),
		meanFitness: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ga_population_mean_fitness",
				Help: "Mean fitness of the current population",
			},
			[]string{"problem"},
		),
		optimalityGap: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "knapsack_optimality_gap",
				Help: "Relative gap between the GA result and the exact optimum",
			},
		),

		// Throughput metrics
		generationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ga_generations_total",
				Help: "Total number of generations evolved",
			},
			[]string{"problem"},
		),
		generationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ga_generation_duration_seconds",
				Help:    "Time spent evolving one generation",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"problem"},
		),

		// Error metrics
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solver_errors_total",
				Help: "Total number of solver errors",
			},
			[]string{"type"},
		),
	}

	reg.MustRegister(
		m.bestFitness,
		m.generation,
		m.meanFitness,
		m.optimalityGap,
		m.generationsTotal,
		m.generationDuration,
		m.errorsTotal,
	)

	return m
}

// RecordGeneration records the statistics of one evolved generation
func (m *Metrics) RecordGeneration(problem string, stats optimization.GenerationStats, elapsed time.Duration) {
	m.bestFitness.WithLabelValues(problem).Set(stats.Best)
	m.meanFitness.WithLabelValues(problem).Set(stats.Mean)
	m.generation.WithLabelValues(problem).Set(float64(stats.Generation))
	m.generationsTotal.WithLabelValues(problem).Inc()
	m.generationDuration.WithLabelValues(problem).Observe(elapsed.Seconds())
}

// SetOptimalityGap updates the knapsack optimality gap
func (m *Metrics) SetOptimalityGap(gap float64) {
	m.optimalityGap.Set(gap)
}

// RecordError records an error metric
func (m *Metrics) RecordError(errorType string) {
	m.errorsTotal.WithLabelValues(errorType).Inc()
}

var defaultMetrics *Metrics

func init() {
	defaultMetrics = NewMetrics(prometheus.DefaultRegisterer)
}

// Default returns the metrics registered on the default Prometheus registry
func Default() *Metrics {
	return defaultMetrics
}

// MetricsHandler handles the Prometheus metrics endpoint
type MetricsHandler struct {
	handler http.Handler
}

// NewMetricsHandler serves the default registry
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{handler: promhttp.Handler()}
}

// NewMetricsHandlerFor serves a specific gatherer
func NewMetricsHandlerFor(gatherer prometheus.Gatherer) *MetricsHandler {
	return &MetricsHandler{handler: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// RecordGeneration records a generation on the default metrics
func RecordGeneration(problem string, stats optimization.GenerationStats, elapsed time.Duration) {
	defaultMetrics.RecordGeneration(problem, stats, elapsed)
}

// RecordError records an error on the default metrics
func RecordError(errorType string) {
	defaultMetrics.RecordError(errorType)
}
