package monitoring

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// NewServer builds an HTTP server exposing /metrics and /status
func NewServer(addr string, gatherer prometheus.Gatherer, tracker *ProgressTracker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", NewMetricsHandlerFor(gatherer))
	if tracker != nil {
		mux.Handle("/status", tracker)
	}

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Serve runs srv until ctx is cancelled, then shuts it down
func Serve(ctx context.Context, srv *http.Server) {
	go func() {
		log.Printf("📡 Metrics available at http://%s/metrics", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("❌ Metrics server stopped: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()
}
