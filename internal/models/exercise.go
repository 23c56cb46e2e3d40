package models

import "time"

// Exercise описывает одну запись журнала. Существует только внутри журнала
// своего пользователя и не имеет собственного идентификатора.
type Exercise struct {
	Description string    `json:"description" bson:"description" validate:"required,min=3,max=30"`
	Duration    float64   `json:"duration" bson:"duration" validate:"gt=0"`
	Date        time.Time `json:"date" bson:"date"`
}

// ExerciseRequest содержит сырые данные новой записи до разбора и валидации.
// Пустая Date означает «дата не передана».
type ExerciseRequest struct {
	Description string
	Duration    string
	Date        string
}

// AddedExercise описывает ответ на добавление записи: саму запись и её владельца.
type AddedExercise struct {
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Date        time.Time `json:"date"`
	ID          string    `json:"_id"`
	Username    string    `json:"username"`
}
