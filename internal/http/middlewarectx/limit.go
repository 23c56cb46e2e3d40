// Package middlewarectx содержит HTTP-middleware сервиса: ограничение
// частоты запросов и перехват паник.
package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/exercise-tracker/internal/http/response"
)

// RateLimitMiddleware отклоняет запросы сверх общего лимита limiter с кодом 429.
func RateLimitMiddleware(log *slog.Logger, limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn("too many requests",
					slog.String("path", r.URL.Path),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				response.Error(w, r, http.StatusTooManyRequests, response.MsgTooManyRequest)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
