// Package register реализует HTTP-обработчик регистрации пользователя трекера.
package register

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/exercise-tracker/internal/http/request"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/response"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// Request содержит входные данные для регистрации.
type Request struct {
	Username request.Value `json:"username" form:"username" swaggertype:"string" example:"alice"`
}

// Service описывает бизнес-логику регистрации.
type Service interface {
	Register(ctx context.Context, username string) (*models.User, error)
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
// @Summary Регистрация нового пользователя
// @Description Создает пользователя с пустым журналом упражнений. Имя от 3 до 10 символов, уникальное.
// @Tags Users
// @Accept json,x-www-form-urlencoded
// @Produce json,plain
// @Param request body Request true "Имя пользователя"
// @Success 200 {object} models.UserSummary
// @Failure 400 {string} string "Username already taken."
// @Failure 500 {string} string "Internal Server Error"
// @Router /new-user [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := request.Decode(r, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.BadBody(w, r, err)
		return
	}
	log.Debug("request body decoded", slog.Any("request", req))

	user, err := h.service.Register(r.Context(), req.Username.String())
	if err != nil {
		status, msg := response.Classify(err)
		if status >= http.StatusInternalServerError {
			log.Error("registration failed", sl.Err(err))
		} else {
			log.Info("registration rejected", slog.String("reason", msg))
		}
		response.Error(w, r, status, msg)
		return
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	response.JSON(w, r, user.Summary())
}
