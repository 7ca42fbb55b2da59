package get_appointment

import (
	"context"

	getAppointment "github.com/m04kA/SC-AppointmentService/internal/usecase/get_appointment"
)

// GetAppointmentUseCase интерфейс use case получения записи
type GetAppointmentUseCase interface {
	Execute(ctx context.Context, req *getAppointment.Request) (*getAppointment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
