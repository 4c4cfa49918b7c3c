package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry holds every collector exposed on /api/metrics
	Registry = prometheus.NewRegistry()

	// CustomAPIBuckets covers millisecond-scale page renders up to slow clients
	CustomAPIBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}

	// HTTP Metrics
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	RateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"http_route"},
	)

	// Business Metrics
	ReadmeGenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "readme_generations_total",
			Help: "Total README generation attempts",
		},
		[]string{"status"},
	)

	ReadmeDownloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "readme_downloads_total",
			Help: "Total README.md downloads",
		},
		[]string{"status"},
	)

	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "readme_validation_failures_total",
			Help: "Validation failures per profile field",
		},
		[]string{"field"},
	)

	DocumentBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "readme_document_bytes",
			Help:    "Size of generated README documents in bytes",
			Buckets: prometheus.ExponentialBuckets(64, 2, 10),
		},
	)

	OptionalSections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "readme_optional_sections_total",
			Help: "Optional sections included in generated documents",
		},
		[]string{"section"},
	)

	// Infrastructure Metrics
	GoRoutines = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

func init() {
	Registry.MustRegister(
		HTTPRequestDuration,
		HTTPRequestTotal,
		ActiveRequests,
		RateLimited,
		ReadmeGenerations,
		ReadmeDownloads,
		ValidationFailures,
		DocumentBytes,
		OptionalSections,
		GoRoutines,
		HeapAlloc,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// RecordInfrastructureMetrics collects infrastructure metrics periodically
// until stop is closed
func RecordInfrastructureMetrics(stop <-chan struct{}) {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				var m runtime.MemStats
				runtime.ReadMemStats(&m)

				GoRoutines.Set(float64(runtime.NumGoroutine()))
				HeapAlloc.Set(float64(m.HeapAlloc))
			}
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
