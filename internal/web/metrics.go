package web

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// untrackedPrefixes are never counted as page views.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/audio/",
	"/video/",
	"/favicon",
	"/metrics",
	"/health",
	"/loading/",
}

// Metrics holds the site's collectors on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	pageViews       *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	contactResults  *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "page_views_total",
			Help:      "Page and fragment views, excluding assets and visitors sending DNT.",
		}, []string{"route"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "portfolio",
			Name:      "http_request_duration_seconds",
			Help:      "Request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		contactResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		m.pageViews,
		m.requestDuration,
		m.contactResults,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Track records request latency for every request. Page views count GET
// requests for pages and fragments only: assets, operational routes and the
// splash stream are skipped, and so are visitors sending DNT: 1.
func (m *Metrics) Track() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())

		if c.Request.Method != http.MethodGet || !tracked(c.Request.URL.Path) || c.GetHeader("DNT") == "1" {
			return
		}
		m.pageViews.WithLabelValues(route).Inc()
	}
}

func tracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

func (m *Metrics) contact(result string) {
	m.contactResults.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
