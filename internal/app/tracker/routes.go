package tracker

import (
	_ "embed"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	// Регистрация описания API для /docs.
	_ "github.com/magabrotheeeer/exercise-tracker/docs"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/handlers/exercise/add"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/handlers/exercise/exerciselog"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/handlers/health"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/handlers/user/list"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/handlers/user/register"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/response"
	"github.com/magabrotheeeer/exercise-tracker/internal/metrics"
	services "github.com/magabrotheeeer/exercise-tracker/internal/services/tracker"
)

//go:embed static/index.html
var indexHTML string

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	trackerService *services.TrackerService,
	store health.Pinger,
	collector *metrics.Collector,
	metricsHandler http.Handler,
	limiter *rate.Limiter,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middlewarectx.Recoverer(logger),
		middleware.URLFormat,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			MaxAge:         300,
		}),
		collector.Middleware,
	)

	r.NotFound(response.NotFound)
	r.MethodNotAllowed(response.NotFound)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, r, indexHTML)
	})

	r.Route("/api/exercise", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))
		r.Post("/new-user", register.New(logger, trackerService).ServeHTTP)
		r.Get("/users", list.New(logger, trackerService).ServeHTTP)
		r.Post("/add", add.New(logger, trackerService).ServeHTTP)
		r.Get("/log", exerciselog.New(logger, trackerService).ServeHTTP)
	})

	r.Get("/health", health.New(logger, store).ServeHTTP)
	r.Handle("/metrics", metricsHandler)
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
