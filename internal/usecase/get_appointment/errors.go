package get_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном reference
	ErrInvalidInput = errors.New("get_appointment: invalid input data")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("get_appointment: appointment not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_appointment: internal error")
)
