package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/exercise-tracker/internal/http/response"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

type Service interface {
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить список пользователей
// @Description Возвращает всех пользователей без журналов в порядке регистрации.
// @Tags Users
// @Produce json,plain
// @Success 200 {array} models.UserSummary
// @Failure 500 {string} string "Internal Server Error"
// @Router /users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		response.FromError(w, r, err)
		return
	}

	log.Info("list users", "count", len(users))
	response.JSON(w, r, users)
}
