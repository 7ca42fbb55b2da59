package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrPastDate возвращается, когда время начала уже в прошлом
	ErrPastDate = errors.New("create_appointment: start time is in the past")

	// ErrClosedDay возвращается, когда дата приходится на нерабочий день
	ErrClosedDay = errors.New("create_appointment: shop is closed on this day")

	// ErrOutsideHours возвращается, когда время начала вне часов работы
	ErrOutsideHours = errors.New("create_appointment: start time is outside working hours")

	// ErrBeyondLeadWindow возвращается, когда дата дальше окна предварительной записи
	ErrBeyondLeadWindow = errors.New("create_appointment: start time is beyond the advance booking window")

	// ErrSlotTaken возвращается, когда слот уже занят другой записью
	ErrSlotTaken = errors.New("create_appointment: slot is no longer available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
