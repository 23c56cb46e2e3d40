// Package models содержит доменные структуры трекера упражнений:
// пользователя, его журнал упражнений и параметры выборки журнала.
package models

// User представляет зарегистрированного пользователя вместе с журналом.
// Журнал хранится в порядке добавления записей и никогда не переупорядочивается.
type User struct {
	ID       string     `json:"_id" validate:"-"`
	Username string     `json:"username" validate:"required,min=3,max=10"`
	Log      []Exercise `json:"log" validate:"-"`
}

// UserSummary описывает пользователя без журнала в том виде, в каком он отдаётся в списках.
type UserSummary struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// Summary отбрасывает журнал пользователя.
func (u User) Summary() UserSummary {
	return UserSummary{Username: u.Username, ID: u.ID}
}
