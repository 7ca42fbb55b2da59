package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	RequestsTotal       *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	AppointmentsCreated prometheus.Counter
	SlotRejections      *prometheus.CounterVec
}

// New регистрирует метрики в реестре по умолчанию
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		AppointmentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Total number of appointments created",
			ConstLabels: constLabels,
		}),

		SlotRejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_rejections_total",
			Help:        "Slot validation rejections by reason",
			ConstLabels: constLabels,
		}, []string{"reason"}),
	}
}

// IncAppointmentCreated увеличивает счётчик созданных записей
func (m *Metrics) IncAppointmentCreated() {
	m.AppointmentsCreated.Inc()
}

// IncSlotRejection увеличивает счётчик отклонённых слотов по причине
func (m *Metrics) IncSlotRejection(reason string) {
	m.SlotRejections.WithLabelValues(reason).Inc()
}
