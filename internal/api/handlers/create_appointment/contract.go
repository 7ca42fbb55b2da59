package create_appointment

import (
	"context"

	createAppointment "github.com/m04kA/SC-AppointmentService/internal/usecase/create_appointment"
)

// CreateAppointmentUseCase интерфейс use case создания записи
type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
