package slotvalidator

import "errors"

var (
	// ErrInvalidInterval возвращается, когда кандидат некорректен (конец не позже начала)
	ErrInvalidInterval = errors.New("slotvalidator: invalid candidate interval")

	// ErrPastDate возвращается, когда начало слота уже в прошлом
	ErrPastDate = errors.New("slotvalidator: start time is in the past")

	// ErrClosedDay возвращается, когда слот приходится на нерабочий день
	ErrClosedDay = errors.New("slotvalidator: shop is closed on this day")

	// ErrOutsideHours возвращается, когда слот начинается вне часов работы
	ErrOutsideHours = errors.New("slotvalidator: start time is outside working hours")

	// ErrBeyondLeadWindow возвращается, когда слот дальше максимального окна записи
	ErrBeyondLeadWindow = errors.New("slotvalidator: start time is beyond the advance booking window")

	// ErrSlotTaken возвращается, когда слот пересекается с уже занятым интервалом
	ErrSlotTaken = errors.New("slotvalidator: slot overlaps an existing appointment")
)
