// Package metrics expone métricas Prometheus de la API: peticiones HTTP y alertas de stock.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/stockmanager/internal/domain/stock"
)

// Metrics colectores registrados en un registry propio (sin estado global).
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	alerts          *prometheus.GaugeVec
	operations      *prometheus.CounterVec
}

// New registra los colectores con el prefijo dado ("stockmanager" -> stockmanager_http_requests_total).
func New(prefix string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		alerts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "_stock_alerts",
			Help: "Active alerts by kind at the last panel build; an ingredient can raise one stock and one expiry alert",
		}, []string{"kind"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_ingredient_operations_total",
			Help: "Ingredient write operations by type",
		}, []string{"operation"}),
	}
	reg.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.alerts,
		m.operations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, k := range stock.Kinds() {
		m.alerts.WithLabelValues(string(k)).Set(0)
	}
	return m
}

// Registry para tests o para registrar colectores adicionales.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Middleware cuenta y mide cada petición por ruta registrada (no por URL, para acotar cardinalidad).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path
		labels := []string{c.Method(), path, strconv.Itoa(status)}
		m.requestsTotal.WithLabelValues(labels...).Inc()
		m.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler GET /metrics.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// RecordAlerts implementa panel.AlertRecorder.
func (m *Metrics) RecordAlerts(counts map[stock.Kind]int) {
	for k, n := range counts {
		m.alerts.WithLabelValues(string(k)).Set(float64(n))
	}
}

// RecordOperation cuenta una escritura exitosa (create, update, update_quantity, delete).
func (m *Metrics) RecordOperation(op string) {
	m.operations.WithLabelValues(op).Inc()
}
