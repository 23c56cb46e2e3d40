package models

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound возвращается, если пользователя с таким идентификатором нет
	// или идентификатор имеет неверный формат.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken возвращается при нарушении уникальности username.
	ErrUsernameTaken = errors.New("username already taken")
)

// ValidationError описывает первое нарушенное ограничение поля.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InvalidDateError возвращается, когда параметр с датой не удалось разобрать.
type InvalidDateError struct {
	Param string
}

func (e *InvalidDateError) Error() string {
	if e.Param == "date" {
		return "Invalid `date`."
	}
	return fmt.Sprintf("Invalid date: `%s`.", e.Param)
}

// StorageError оборачивает ошибку хранилища, не относящуюся к предметной области.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
