package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Результаты операций для label "result"
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultBlocked = "blocked"
)

// Metrics набор метрик сервиса
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HolidayFetchTotal   *prometheus.CounterVec
	HolidaysLoaded      prometheus.Gauge
	SubmissionsTotal    *prometheus.CounterVec
	SessionsActive      prometheus.Gauge
}

// New создает и регистрирует метрики в переданном registerer
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		HolidayFetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "holiday_fetch_total",
			Help:        "Holiday API fetch attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		HolidaysLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "holidays_loaded",
			Help:        "Number of holiday entries currently loaded",
			ConstLabels: constLabels,
		}),
		SubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "form_submissions_total",
			Help:        "Form submission attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "form_sessions_active",
			Help:        "Number of live form sessions",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HolidayFetchTotal,
		m.HolidaysLoaded,
		m.SubmissionsTotal,
		m.SessionsActive,
	)

	return m
}

// ObserveHTTP фиксирует запрос в счетчике и гистограмме
func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// IncHolidayFetch фиксирует попытку загрузки праздников
func (m *Metrics) IncHolidayFetch(result string) {
	if m == nil {
		return
	}
	m.HolidayFetchTotal.WithLabelValues(result).Inc()
}

// SetHolidaysLoaded выставляет количество загруженных праздников
func (m *Metrics) SetHolidaysLoaded(n int) {
	if m == nil {
		return
	}
	m.HolidaysLoaded.Set(float64(n))
}

// IncSubmission фиксирует попытку отправки формы
func (m *Metrics) IncSubmission(result string) {
	if m == nil {
		return
	}
	m.SubmissionsTotal.WithLabelValues(result).Inc()
}

// SetSessionsActive выставляет количество живых сессий формы
func (m *Metrics) SetSessionsActive(n int) {
	if m == nil {
		return
	}
	m.SessionsActive.Set(float64(n))
}
