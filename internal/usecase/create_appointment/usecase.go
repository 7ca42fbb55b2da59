package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
	"github.com/m04kA/SC-AppointmentService/internal/engine/slotvalidator"
	serviceRepo "github.com/m04kA/SC-AppointmentService/internal/infra/storage/service"
)

// UseCase use case для создания записи на услугу.
// Серверная сторона - авторитет по занятости слотов: проверка и вставка
// выполняются в одной сериализуемой транзакции, чтобы два клиента не
// забронировали один слот одновременно.
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	slotValidator   *slotvalidator.Validator
	txManager       TransactionManager
	mailer          Mailer
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	slotValidator *slotvalidator.Validator,
	txManager TransactionManager,
	mailer Mailer,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		slotValidator:   slotValidator,
		txManager:       txManager,
		mailer:          mailer,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, service=%d, start=%s",
		req.ClientName, req.ServiceID, req.StartTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу (длительность слота берётся из неё)
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	candidate := domain.Interval{
		Start: req.StartTime,
		End:   req.StartTime.Add(time.Duration(svc.DurationMinutes) * time.Minute),
	}

	var result *domain.Appointment

	// 4. Проверка занятости и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Занятые интервалы в день кандидата
		dayStart := candidate.Start.Add(-24 * time.Hour)
		dayEnd := candidate.End.Add(24 * time.Hour)

		appointments, err := uc.appointmentRepo.GetBookedBetween(txCtx, dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get booked appointments: %v", err)
			return fmt.Errorf("%w: failed to get booked appointments: %v", ErrInternal, err)
		}

		booked := make([]domain.Interval, 0, len(appointments))
		for _, appt := range appointments {
			if appt.IsActive() {
				booked = append(booked, appt.Interval())
			}
		}

		// 4.2. Полная проверка слота той же цепочкой, что и на клиенте
		if err := uc.slotValidator.Validate(candidate, now, booked); err != nil {
			uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
			if uc.metrics != nil {
				uc.metrics.IncSlotRejection(slotRejectionReason(err))
			}
			return mapSlotError(err)
		}

		// 4.3. Создаем запись с денормализацией данных услуги
		appt := &domain.Appointment{
			Reference:       uuid.NewString(),
			ClientName:      strings.TrimSpace(req.ClientName),
			ClientEmail:     strings.TrimSpace(req.ClientEmail),
			ServiceID:       svc.ID,
			ServiceName:     svc.Name,
			ServicePrice:    svc.Price,
			StartTime:       candidate.Start,
			DurationMinutes: svc.DurationMinutes,
			Status:          domain.StatusConfirmed,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, reference=%s",
		result.ID, result.Reference)

	if uc.metrics != nil {
		uc.metrics.IncAppointmentCreated()
	}

	// 5. Письма-подтверждения: ошибка почты не отменяет созданную запись
	if err := uc.mailer.SendConfirmation(ctx, result); err != nil {
		uc.logger.Error("CreateAppointment: failed to send confirmation email for reference=%s: %v",
			result.Reference, err)
	}

	return &Response{
		ID:              result.ID,
		Reference:       result.Reference,
		ClientName:      result.ClientName,
		ClientEmail:     result.ClientEmail,
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
	}, nil
}

// slotRejectionReason метка причины отказа для метрик
func slotRejectionReason(err error) string {
	switch {
	case errors.Is(err, slotvalidator.ErrPastDate):
		return "past_date"
	case errors.Is(err, slotvalidator.ErrClosedDay):
		return "closed_day"
	case errors.Is(err, slotvalidator.ErrOutsideHours):
		return "outside_hours"
	case errors.Is(err, slotvalidator.ErrBeyondLeadWindow):
		return "beyond_lead_window"
	case errors.Is(err, slotvalidator.ErrSlotTaken):
		return "slot_taken"
	default:
		return "invalid"
	}
}

// mapSlotError переводит ошибки валидатора слотов в ошибки usecase,
// чтобы handlers не зависели от пакета валидатора
func mapSlotError(err error) error {
	switch {
	case errors.Is(err, slotvalidator.ErrPastDate):
		return ErrPastDate
	case errors.Is(err, slotvalidator.ErrClosedDay):
		return ErrClosedDay
	case errors.Is(err, slotvalidator.ErrOutsideHours):
		return ErrOutsideHours
	case errors.Is(err, slotvalidator.ErrBeyondLeadWindow):
		return ErrBeyondLeadWindow
	case errors.Is(err, slotvalidator.ErrSlotTaken):
		return ErrSlotTaken
	case errors.Is(err, slotvalidator.ErrInvalidInterval):
		return fmt.Errorf("%w: invalid slot interval", ErrInvalidInput)
	default:
		return fmt.Errorf("%w: slot validation: %v", ErrInternal, err)
	}
}
