package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avikhr/SalonBookingService/pkg/metrics"
)

// Metrics middleware сбора HTTP метрик по шаблону маршрута
type Metrics struct {
	metrics *metrics.Metrics
}

// NewMetrics создает новый экземпляр metrics middleware
func NewMetrics(m *metrics.Metrics) *Metrics {
	return &Metrics{metrics: m}
}

// Collect записывает длительность и статус каждого запроса
func (m *Metrics) Collect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if template, err := route.GetPathTemplate(); err == nil {
				path = template
			}
		}

		m.metrics.ObserveHTTPRequest(r.Method, path, recorder.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
