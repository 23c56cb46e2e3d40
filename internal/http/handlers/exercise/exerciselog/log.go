// Package exerciselog реализует HTTP-обработчик выборки журнала упражнений.
package exerciselog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/exercise-tracker/internal/http/response"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

type Service interface {
	Log(ctx context.Context, userID string, q models.LogQuery) (*models.UserLog, error)
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
// @Summary Журнал упражнений пользователя
// @Description Возвращает записи журнала с датой в диапазоне [from, to] в порядке добавления, не больше limit штук.
// @Tags Exercises
// @Produce json,plain
// @Param userId query string true "Идентификатор пользователя"
// @Param from query string false "Нижняя граница даты (YYYY-MM-DD или миллисекунды)"
// @Param to query string false "Верхняя граница даты (YYYY-MM-DD или миллисекунды)"
// @Param limit query int false "Максимальное число записей"
// @Success 200 {object} models.UserLog
// @Failure 400 {string} string "Unknown userId."
// @Failure 500 {string} string "Internal Server Error"
// @Router /log [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exercise.log"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query()
	userID := query.Get("userId")

	userLog, err := h.service.Log(r.Context(), userID, models.LogQuery{
		From:  query.Get("from"),
		To:    query.Get("to"),
		Limit: query.Get("limit"),
	})
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Info("unknown user", slog.String("user_id", userID))
			response.Error(w, r, http.StatusBadRequest, response.MsgUnknownUserID)
			return
		}
		status, msg := response.Classify(err)
		if status >= http.StatusInternalServerError {
			log.Error("failed to read log", sl.Err(err))
		} else {
			log.Info("log query rejected", slog.String("reason", msg))
		}
		response.Error(w, r, status, msg)
		return
	}

	log.Info("log read", slog.String("user_id", userID), slog.Int("count", len(userLog.Log)))
	response.JSON(w, r, userLog)
}
