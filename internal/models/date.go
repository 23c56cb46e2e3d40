package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// FormatDate форматирует дату в UTC с миллисекундами. Годы вне 0..9999
// записываются со знаком и шестью цифрами: +011476-01-01T00:00:00.000Z.
func FormatDate(t time.Time) string {
	t = t.UTC()
	rest := t.Format("-01-02T15:04:05.000Z")
	switch y := t.Year(); {
	case y < 0:
		return fmt.Sprintf("-%06d%s", -y, rest)
	case y > 9999:
		return fmt.Sprintf("+%06d%s", y, rest)
	default:
		return fmt.Sprintf("%04d%s", y, rest)
	}
}

func (e Exercise) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Description string  `json:"description"`
		Duration    float64 `json:"duration"`
		Date        string  `json:"date"`
	}{e.Description, e.Duration, FormatDate(e.Date)})
}

func (a AddedExercise) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Description string  `json:"description"`
		Duration    float64 `json:"duration"`
		Date        string  `json:"date"`
		ID          string  `json:"_id"`
		Username    string  `json:"username"`
	}{a.Description, a.Duration, FormatDate(a.Date), a.ID, a.Username})
}

func (e ExerciseAddedEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		UserID      string  `json:"user_id"`
		Username    string  `json:"username"`
		Description string  `json:"description"`
		Duration    float64 `json:"duration"`
		Date        string  `json:"date"`
	}{e.UserID, e.Username, e.Description, e.Duration, FormatDate(e.Date)})
}
