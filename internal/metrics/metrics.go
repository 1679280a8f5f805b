package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SituacionOperations counts core operations by name and outcome
	// ("ok" or "error").
	SituacionOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "situaciones_operations_total",
			Help: "Total persistent-situation operations by outcome",
		},
		[]string{"op", "outcome"},
	)

	WebsocketSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "situaciones_websocket_subscribers",
			Help: "Currently connected event subscribers",
		},
	)
)

// ObserveOperation records one operation outcome.
func ObserveOperation(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	SituacionOperations.WithLabelValues(op, outcome).Inc()
}

// NewServer creates an HTTP server serving /metrics (Prometheus) and /healthz.
func NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return &http.Server{
		Addr:    addr,
		Handler: mux,
	}
}
