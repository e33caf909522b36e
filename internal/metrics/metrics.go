package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// OptimizeDuration tracks engine run time per optimization request.
	OptimizeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "optimize_duration_seconds", Help: "Convoy optimization duration in seconds.", Buckets: prometheus.DefBuckets},
	)
	// ConvoysPlanned counts produced assignments by transport mode.
	ConvoysPlanned = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "convoys_planned_total", Help: "Convoy assignments produced by mode."},
		[]string{"mode"},
	)
	// OptimizeOutcomes counts runs by outcome (ok, point_not_found, ...).
	OptimizeOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "optimize_runs_total", Help: "Optimization runs by outcome."},
		[]string{"outcome"},
	)

	GeometryCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "geometry_cache_lookups_total", Help: "Road geometry cache lookups by result."},
		[]string{"result"},
	)
	GeometryFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "geometry_fallbacks_total", Help: "Road geometry lookups that fell back to a straight line."},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on Registry. Safe to call twice.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(OptimizeDuration)
		Registry.MustRegister(ConvoysPlanned)
		Registry.MustRegister(OptimizeOutcomes)
		Registry.MustRegister(GeometryCache)
		Registry.MustRegister(GeometryFallbacks)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
