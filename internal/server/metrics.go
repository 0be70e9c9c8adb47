package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Lrrr908/sewer-showdown/pkg/pipeline"
)

// metrics holds the server's collectors on a private registry so several
// servers can coexist in one process.
type metrics struct {
	registry *prometheus.Registry

	reqDuration *prometheus.HistogramVec
	reqErrors   *prometheus.CounterVec
	runs        *prometheus.CounterVec
	runDuration prometheus.Histogram
	buildings   *prometheus.GaugeVec
	roadTiles   prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		reqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "urbanplan",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "path", "status"}),
		reqErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "urbanplan",
			Name:      "http_request_errors_total",
			Help:      "Requests that ended with a 4xx or 5xx status.",
		}, []string{"method", "path", "status"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "urbanplan",
			Name:      "generate_runs_total",
			Help:      "Generation runs by outcome.",
		}, []string{"result"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "urbanplan",
			Name:      "generate_duration_seconds",
			Help:      "Wall time of generation runs.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		buildings: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "urbanplan",
			Name:      "last_run_buildings",
			Help:      "Buildings placed by the last successful run, by zone.",
		}, []string{"zone"}),
		roadTiles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "urbanplan",
			Name:      "last_run_road_tiles",
			Help:      "Road surface tiles of the last successful run.",
		}),
	}
	m.registry.MustRegister(m.reqDuration, m.reqErrors, m.runs, m.runDuration, m.buildings, m.roadTiles)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) observeRun(stats *pipeline.Stats, err error) {
	if err != nil {
		m.runs.WithLabelValues("error").Inc()
		return
	}
	m.runs.WithLabelValues("ok").Inc()
	m.runDuration.Observe(stats.Elapsed.Seconds())
	for _, zone := range pipeline.ZoneOrder() {
		m.buildings.WithLabelValues(zone).Set(float64(stats.BuildingsByZone[zone]))
	}
	total := 0
	for _, n := range stats.Surface {
		total += n
	}
	m.roadTiles.Set(float64(total))
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument records duration and error metrics for every request.
func (m *metrics) instrument(pattern string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, req)

		status := strconv.Itoa(rec.status)
		m.reqDuration.WithLabelValues(req.Method, pattern, status).Observe(time.Since(start).Seconds())
		if rec.status >= 400 {
			m.reqErrors.WithLabelValues(req.Method, pattern, status).Inc()
		}
	}
}
