package get_booked_slots

import (
	"context"

	getBookedSlots "github.com/m04kA/SC-AppointmentService/internal/usecase/get_booked_slots"
)

// GetBookedSlotsUseCase интерфейс use case получения занятых интервалов
type GetBookedSlotsUseCase interface {
	Execute(ctx context.Context, req *getBookedSlots.Request) (*getBookedSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
