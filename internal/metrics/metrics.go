package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	Requests       *prometheus.CounterVec
	RequestSeconds *prometheus.HistogramVec
	CPUUtilization prometheus.Gauge
	PageVisits     *prometheus.CounterVec
	VisitLogErrors prometheus.Counter
}

// New registers the site's collectors on a fresh registry tagged with the
// server name.
func New(server string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(prometheus.WrapRegistererWith(prometheus.Labels{"server": server}, reg))

	return &Metrics{
		registry: reg,
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of HTTP requests served",
		}, []string{"method", "route", "code"}),
		RequestSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		CPUUtilization: f.NewGauge(prometheus.GaugeOpts{
			Name: "cpu_utilization_percent",
			Help: "CPU utilization reported by the last /api/cpu query",
		}),
		PageVisits: f.NewCounterVec(prometheus.CounterOpts{
			Name: "page_visits_total",
			Help: "Page visits written to the visit log",
		}, []string{"page"}),
		VisitLogErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "visit_log_errors_total",
			Help: "Visit log appends that failed",
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one served request. A nil receiver is a no-op.
func (m *Metrics) ObserveRequest(method, route string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.RequestSeconds.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) ObserveCPU(pct int) {
	if m == nil {
		return
	}
	m.CPUUtilization.Set(float64(pct))
}

func (m *Metrics) ObserveVisit(page string, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.VisitLogErrors.Inc()
		return
	}
	m.PageVisits.WithLabelValues(page).Inc()
}
