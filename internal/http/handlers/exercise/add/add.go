// Package add реализует HTTP-обработчик добавления записи в журнал упражнений.
//
// Дата записи необязательна: без неё используется текущее время сервера.
// Ошибки отдаются одной строкой text/plain.
package add

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

// Request содержит тело запроса. Duration и Date принимаются строкой или числом.
type Request struct {
	UserID      request.Value `json:"userId" form:"userId" swaggertype:"string"`
	Description request.Value `json:"description" form:"description" swaggertype:"string" example:"run"`
	Duration    request.Value `json:"duration" form:"duration" swaggertype:"string" example:"30"`
	Date        request.Value `json:"date" form:"date" swaggertype:"string" example:"2023-05-01"`
}

// Service описывает бизнес-логику добавления записи.
type Service interface {
	AddExercise(ctx context.Context, userID string, req models.ExerciseRequest) (*models.AddedExercise, error)
}

// Handler обрабатывает POST /api/exercise/add.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Добавить упражнение
// @Description Дописывает запись в конец журнала пользователя. Дата в формате YYYY-MM-DD или в миллисекундах, по умолчанию текущая.
// @Tags Exercises
// @Accept json,x-www-form-urlencoded
// @Produce json,plain
// @Param request body Request true "Данные упражнения"
// @Success 200 {object} models.AddedExercise
// @Failure 400 {string} string "Invalid `date`."
// @Failure 404 {string} string "User not found."
// @Failure 500 {string} string "Internal Server Error"
// @Router /add [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exercise.add"

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

	added, err := h.service.AddExercise(r.Context(), req.UserID.String(), models.ExerciseRequest{
		Description: req.Description.String(),
		Duration:    req.Duration.String(),
		Date:        req.Date.String(),
	})
	if err != nil {
		status, msg := response.Classify(err)
		if status >= http.StatusInternalServerError {
			log.Error("failed to add exercise", sl.Err(err))
		} else {
			log.Info("exercise rejected", slog.String("user_id", req.UserID.String()), slog.String("reason", msg))
		}
		response.Error(w, r, status, msg)
		return
	}

	log.Info("exercise added", slog.String("user_id", added.ID))
	response.JSON(w, r, added)
}
