package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/exercise-tracker/internal/http/response"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	log   *slog.Logger
	store Pinger
}

func New(log *slog.Logger, store Pinger) *Handler {
	return &Handler{
		log:   log,
		store: store,
	}
}

// ServeHTTP отвечает OK, если хранилище доступно.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Error("storage ping failed",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err),
		)
		response.Error(w, r, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	response.Error(w, r, http.StatusOK, "OK")
}
