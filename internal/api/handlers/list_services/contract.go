package list_services

import (
	"context"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
)

// ServicesCatalog интерфейс сервиса каталога услуг
type ServicesCatalog interface {
	List(ctx context.Context) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
