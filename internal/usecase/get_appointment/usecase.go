package get_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	appointmentRepo "github.com/m04kA/SC-AppointmentService/internal/infra/storage/appointment"
)

// UseCase use case получения записи по reference из ссылки подтверждения
type UseCase struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{appointmentRepo: repo, logger: logger}
}

// Execute выполняет use case получения записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Reference - всегда UUID; всё остальное отклоняем до похода в базу
	if err := uuid.Validate(req.Reference); err != nil {
		uc.logger.Warn("GetAppointment: invalid reference %q", req.Reference)
		return nil, fmt.Errorf("%w: reference must be a valid UUID", ErrInvalidInput)
	}

	// 2. Получаем запись
	appt, err := uc.appointmentRepo.GetByReference(ctx, req.Reference)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("GetAppointment: reference=%s not found", req.Reference)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("GetAppointment: failed to get appointment reference=%s: %v", req.Reference, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAppointment: found appointment id=%d, reference=%s", appt.ID, appt.Reference)

	return &Response{
		Reference:       appt.Reference,
		ClientName:      appt.ClientName,
		ServiceName:     appt.ServiceName,
		ServicePrice:    appt.ServicePrice,
		StartTime:       appt.StartTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		CanBeCancelled:  appt.CanBeCancelled(),
		CreatedAt:       appt.CreatedAt,
	}, nil
}
