package bookingform

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField возвращается, когда обязательное поле пустое после trim
	ErrMissingField = errors.New("bookingform: required field is missing")

	// ErrBadEmail возвращается, когда email не соответствует форме local@domain.tld
	ErrBadEmail = errors.New("bookingform: email address is malformed")
)

// FieldError ошибка валидации конкретного поля формы
type FieldError struct {
	Field string
	Err   error
}

// Error возвращает текст ошибки с именем поля
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap отдаёт вложенную причину для errors.Is
func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldErrors все ошибки валидации формы в порядке объявления полей.
// Порядок детерминирован, поэтому первое сообщение, показанное
// пользователю, стабильно от запуска к запуску.
type FieldErrors []*FieldError

// Error возвращает сообщение первого не прошедшего поля
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "bookingform: validation failed"
	}
	return e[0].Error()
}

// First возвращает первую ошибку в порядке объявления полей
func (e FieldErrors) First() *FieldError {
	if len(e) == 0 {
		return nil
	}
	return e[0]
}
