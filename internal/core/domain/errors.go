package domain

import "fmt"

// NoTemplateError — у локации не настроен ни один шаблон рабочих часов.
// Отличается от "все занято": вызывающая сторона показывает другое сообщение.
type NoTemplateError struct {
	LocationID uint
}

func (e *NoTemplateError) Error() string {
	return fmt.Sprintf("no availability template found for location %d", e.LocationID)
}

// InvalidDateError — некорректная дата начала недели от вызывающей стороны.
type InvalidDateError struct {
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid week start date %q: %v", e.Value, e.Err)
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

// DataAccessError — ошибка обращения к хранилищу, исходная причина сохраняется.
// Чтение идемпотентно, вызывающая сторона может безопасно повторить запрос.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access failed: %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}
