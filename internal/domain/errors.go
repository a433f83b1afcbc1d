package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")
)

// ValidationError ошибка предусловий пользовательского ввода. Всегда локально
// восстановимая: показывается рядом с формой и не прерывает ничего кроме текущего действия.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// RejectedError внешний стор отклонил уже отправленную транзакцию (например дубликат
// референса платежа). Отличается от ValidationError: повторная автоматическая отправка
// недопустима, чтобы не задвоить запись.
type RejectedError struct {
	Reason string
	Err    error
}

func NewRejectedError(reason string, err error) error {
	return &RejectedError{Reason: reason, Err: err}
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("transaction rejected: %s", e.Reason)
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}
