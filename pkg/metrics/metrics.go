package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequestsTotal      *prometheus.CounterVec
	httpRequestDuration    *prometheus.HistogramVec
	dbQueryDuration        *prometheus.HistogramVec
	dbQueryErrors          *prometheus.CounterVec
	staleCalendarResponses prometheus.Counter
	cuposCompleted         prometheus.Counter
}

// New создает и регистрирует метрики в переданном registerer
// В тестах удобно передавать prometheus.NewRegistry(), чтобы не было конфликтов регистрации
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		staleCalendarResponses: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "calendar_stale_responses_total",
			Help:        "Calendar fetch results discarded because a newer range was requested",
			ConstLabels: constLabels,
		}),
		cuposCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "cupos_completed_total",
			Help:        "Cupos moved to completed status by the scheduler",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.staleCalendarResponses,
		m.cuposCompleted,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполнение запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// IncStaleCalendarResponse увеличивает счетчик отброшенных устаревших ответов календаря
func (m *Metrics) IncStaleCalendarResponse() {
	if m == nil {
		return
	}
	m.staleCalendarResponses.Inc()
}

// AddCuposCompleted добавляет количество закрытых планировщиком cupos
func (m *Metrics) AddCuposCompleted(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.cuposCompleted.Add(float64(n))
}
