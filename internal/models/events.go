package models

import "time"

// Ключи маршрутизации событий трекера.
const (
	EventUserRegistered = "user.registered"
	EventExerciseAdded  = "exercise.added"
)

// UserRegisteredEvent публикуется после регистрации пользователя.
type UserRegisteredEvent struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	At       time.Time `json:"at"`
}

// ExerciseAddedEvent публикуется после добавления записи в журнал.
type ExerciseAddedEvent struct {
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Date        time.Time `json:"date"`
}
