// Package metrics Prometheus-метрики сервиса
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор коллекторов сервиса, зарегистрированных в собственном реестре
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingsTotal       *prometheus.CounterVec
	NotificationsTotal  *prometheus.CounterVec
	RoomsAvailable      prometheus.Gauge
	RoomsTotal          prometheus.Gauge
}

// New создает и регистрирует все метрики
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	constLabels := prometheus.Labels{"service": serviceName}
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		BookingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_total",
			Help:        "Booking attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		NotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Notifications shown by severity",
			ConstLabels: constLabels,
		}, []string{"severity"}),
		RoomsAvailable: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "rooms_available",
			Help:        "Number of rooms currently marked available",
			ConstLabels: constLabels,
		}),
		RoomsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "rooms_total",
			Help:        "Number of rooms in the store",
			ConstLabels: constLabels,
		}),
	}
}

// Handler HTTP-обработчик для экспорта метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает реестр (для тестов и дополнительных коллекторов)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveBooking учитывает попытку бронирования
func (m *Metrics) ObserveBooking(result string) {
	m.BookingsTotal.WithLabelValues(result).Inc()
}

// ObserveNotification учитывает показанное уведомление
func (m *Metrics) ObserveNotification(severity string) {
	m.NotificationsTotal.WithLabelValues(severity).Inc()
}

// SetRooms обновляет gauge по количеству номеров
func (m *Metrics) SetRooms(total, available int) {
	m.RoomsTotal.Set(float64(total))
	m.RoomsAvailable.Set(float64(available))
}
