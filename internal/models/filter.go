package models

import "time"

// LogQuery содержит сырые параметры запроса журнала. Пустые строки означают
// отсутствие параметра.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

// LogFilter передаётся в слой хранения. Обе границы включительные,
// nil означает отсутствие границы.
type LogFilter struct {
	From *time.Time
	To   *time.Time
}

// Contains сообщает, попадает ли дата в диапазон фильтра.
func (f LogFilter) Contains(t time.Time) bool {
	if f.From != nil && t.Before(*f.From) {
		return false
	}
	if f.To != nil && t.After(*f.To) {
		return false
	}
	return true
}

// UserLog описывает пользователя с отфильтрованным журналом.
type UserLog struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Log      []Exercise `json:"log"`
}
