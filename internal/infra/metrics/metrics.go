// Package metrics exposes Prometheus metrics for the HTTP API and the database pool.
package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	defaultNamespace = "storefront"
	defaultPath      = "/metrics"
	unmatchedRoute   = "unmatched"
)

// Metrics holds the HTTP collectors and the registry they are exported from.
type Metrics struct {
	registry *prometheus.Registry
	path     string
	enabled  bool

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
}

// Params holds dependencies for Metrics, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB `optional:"true"`
}

// New builds the collectors on a private registry.
func New(params Params) *Metrics {
	cfg := params.Config.Metrics
	if cfg == nil {
		cfg = &config.MetricsConfig{}
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}
	path := cfg.Path
	if path == "" {
		path = defaultPath
	}

	m := newMetrics(namespace)
	m.path = path
	m.enabled = cfg.Enabled

	if params.DB != nil {
		if sqlDB, err := params.DB.DB(); err == nil {
			m.registry.MustRegister(collectors.NewDBStatsCollector(sqlDB, namespace))
		} else {
			params.Logger.Warn("Database pool metrics unavailable", slog.Any("error", err))
		}
	}

	return m
}

func newMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		path:     defaultPath,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Current number of HTTP requests being processed",
			},
		),
	}
}

// Enabled reports whether the scrape endpoint should be mounted.
func (m *Metrics) Enabled() bool {
	return m.enabled
}

// Path is the route the scrape endpoint is mounted on.
func (m *Metrics) Path() string {
	return m.path
}

// Middleware records request counts and latency. Paths are labelled with the
// route template so IDs do not explode label cardinality.
func (m *Metrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			// The error handler has not written the response yet.
			status = statusFromError(err)
		}

		path := c.Path()
		if path == "" {
			path = unmatchedRoute
		}
		method := c.Request().Method

		m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func statusFromError(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
