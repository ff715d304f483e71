// Package metrics exposes the registry's Prometheus collectors and the
// HTTP server that serves them alongside liveness and readiness probes.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RegistrationsTotal counts finished registration pipelines by kind
	// and terminal outcome (completed, failed, cancelled).
	RegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_registrations_total",
			Help: "Finished registration pipelines by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	// RegistrationDuration tracks wall time from Register arrival to
	// stream completion.
	RegistrationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "registry_registration_duration_seconds",
			Help:    "Time spent driving one registration pipeline.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// ActiveRegistrations gauges Register streams currently in flight.
	ActiveRegistrations = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_active_registrations",
			Help: "Register streams currently in flight.",
		},
	)

	// RequestDuration tracks the duration of gRPC requests.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grpc_request_duration_seconds",
			Help:    "Time spent processing gRPC requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)

	// WatchStreams gauges open discovery watch streams.
	WatchStreams = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "registry_watch_streams",
			Help: "Open discovery watch streams by kind.",
		},
		[]string{"kind"},
	)

	// CallbackChannelsOpen gauges cached module callback connections.
	CallbackChannelsOpen = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_callback_channels_open",
			Help: "Cached gRPC channels to registered modules.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RegistrationsTotal,
		RegistrationDuration,
		ActiveRegistrations,
		RequestDuration,
		WatchStreams,
		CallbackChannelsOpen,
	)
}

// Probe reports whether the process can serve; a non-nil error names the
// dependency that is not ready.
type Probe func() error

// NewServer serves /metrics plus /healthz and /readyz. The readiness
// handler consults the supplied probe; a nil probe is always ready.
func NewServer(addr string, ready Probe) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if ready != nil {
			if err := ready(); err != nil {
				http.Error(w, "not ready: "+err.Error(), http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}
}
