// Package metrics собирает метрики Prometheus для HTTP-слоя и доменных операций.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector хранит счётчики и гистограммы сервиса.
type Collector struct {
	requests        *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	usersRegistered prometheus.Counter
	exercisesAdded  prometheus.Counter
}

// NewCollector создаёт Collector и регистрирует метрики в reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracker_http_requests_total",
			Help: "Количество HTTP-запросов по маршруту, методу и статусу",
		}, []string{"route", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tracker_http_request_duration_seconds",
			Help:    "Длительность обработки HTTP-запросов",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		usersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_users_registered_total",
			Help: "Количество зарегистрированных пользователей",
		}),
		exercisesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_exercises_added_total",
			Help: "Количество добавленных записей журнала",
		}),
	}

	reg.MustRegister(c.requests, c.latency, c.usersRegistered, c.exercisesAdded)
	return c
}

// RecordUserRegistered учитывает регистрацию пользователя.
func (c *Collector) RecordUserRegistered() {
	c.usersRegistered.Inc()
}

// RecordExerciseAdded учитывает добавление записи журнала.
func (c *Collector) RecordExerciseAdded() {
	c.exercisesAdded.Inc()
}

// Middleware учитывает каждый запрос по шаблону маршрута chi.
// Запросы без найденного маршрута попадают в route="unmatched".
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		c.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		c.latency.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

// Handler возвращает обработчик для сбора метрик Prometheus.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
