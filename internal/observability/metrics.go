package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's prometheus collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	errors    *prometheus.CounterVec
	signups   *prometheus.CounterVec
	logins    *prometheus.CounterVec
	reviews   prometheus.Counter
	menuViews *prometheus.CounterVec
}

// NewMetrics registers all collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mess_http_requests_total",
			Help: "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mess_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "method"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mess_http_errors_total",
			Help: "Error responses by route and error code",
		}, []string{"route", "method", "code"}),
		signups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mess_signups_total",
			Help: "Signup attempts by outcome",
		}, []string{"outcome"}),
		logins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mess_logins_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),
		reviews: factory.NewCounter(prometheus.CounterOpts{
			Name: "mess_reviews_submitted_total",
			Help: "Food reviews submitted",
		}),
		menuViews: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mess_menu_views_total",
			Help: "Menu views by weekday",
		}, []string{"day"}),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(route, method, code string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(route, method, code).Inc()
}

// RecordSignup counts a signup attempt; outcome is "ok" or an error code.
func (m *Metrics) RecordSignup(outcome string) {
	if m == nil {
		return
	}
	m.signups.WithLabelValues(outcome).Inc()
}

// RecordLogin counts a login attempt; outcome is "ok" or an error code.
func (m *Metrics) RecordLogin(outcome string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome).Inc()
}

// RecordReview counts a stored review.
func (m *Metrics) RecordReview() {
	if m == nil {
		return
	}
	m.reviews.Inc()
}

// RecordMenuView counts a menu display for day.
func (m *Metrics) RecordMenuView(day string) {
	if m == nil {
		return
	}
	m.menuViews.WithLabelValues(day).Inc()
}
