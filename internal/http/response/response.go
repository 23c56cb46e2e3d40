// Package response формирует ответы HTTP-обработчиков: JSON для успешных
// запросов и однострочный text/plain для ошибок.
package response

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// Тексты ответов, не зависящие от конкретного поля.
const (
	MsgNotFound       = "not found"
	MsgInternal       = "Internal Server Error"
	MsgUsernameTaken  = "Username already taken."
	MsgUserNotFound   = "User not found."
	MsgUnknownUserID  = "Unknown userId."
	MsgTooManyRequest = "too many requests"
	MsgInvalidBody    = "invalid request body"
)

// JSON отдаёт v как JSON с кодом 200.
func JSON(w http.ResponseWriter, r *http.Request, v any) {
	render.JSON(w, r, v)
}

// Error отдаёт msg как text/plain с кодом status.
func Error(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.PlainText(w, r, msg)
}

// Classify сопоставляет ошибку сервиса с кодом ответа и текстом для клиента.
//
//   - *models.ValidationError    → 400, сообщение поля
//   - models.ErrUsernameTaken    → 400, "Username already taken."
//   - *models.InvalidDateError   → 400, сообщение о дате
//   - models.ErrUserNotFound     → 404, "User not found."
//   - остальное                  → 500, "Internal Server Error"
func Classify(err error) (int, string) {
	var validationErr *models.ValidationError
	var dateErr *models.InvalidDateError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.As(err, &dateErr):
		return http.StatusBadRequest, dateErr.Error()
	case errors.Is(err, models.ErrUsernameTaken):
		return http.StatusBadRequest, MsgUsernameTaken
	case errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound, MsgUserNotFound
	default:
		return http.StatusInternalServerError, MsgInternal
	}
}

// FromError пишет ответ для ошибки сервиса.
func FromError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := Classify(err)
	Error(w, r, status, msg)
}

// BadBody отвечает 400 на неразобранное тело запроса. Если ошибка
// относится к конкретному полю, клиент получает её сообщение.
func BadBody(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		Error(w, r, http.StatusBadRequest, validationErr.Message)
		return
	}
	Error(w, r, http.StatusBadRequest, MsgInvalidBody)
}

// NotFound отвечает 404 на неизвестные маршруты.
func NotFound(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusNotFound, MsgNotFound)
}
