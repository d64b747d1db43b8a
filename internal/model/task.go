package model

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	Date        time.Time `json:"data"`
	Status      Status    `json:"status"`
}

// TaskFilter описывает критерии выборки; nil-поля не участвуют в фильтре
type TaskFilter struct {
	Title  *string
	Day    *time.Time
	Status *Status
}

// Форматы даты, которые принимаем на входе. Без зоны считаем UTC
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate разбирает дату из query-параметра или тела запроса и приводит её к UTC.
// Минимальная дата (0001-01-01T00:00:00) в любой зоне превращается в нулевое значение
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if isMinWallClock(t) {
				return time.Time{}, nil
			}
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// isMinWallClock сравнивает показания часов до перевода в UTC
func isMinWallClock(t time.Time) bool {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return y == 1 && m == time.January && d == 1 && hh == 0 && mm == 0 && ss == 0 && t.Nanosecond() == 0
}

// DayRange возвращает полуинтервал [start, end) календарного дня (UTC), в который попадает t
func DayRange(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// Matches проверяет задачу против фильтра. Используется in-memory хранилищем
func (f TaskFilter) Matches(t Task) bool {
	if f.Title != nil && t.Title != *f.Title {
		return false
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Day != nil {
		start, end := DayRange(*f.Day)
		d := t.Date.UTC()
		if d.Before(start) || !d.Before(end) {
			return false
		}
	}
	return true
}
