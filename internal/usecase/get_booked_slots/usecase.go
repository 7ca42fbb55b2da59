package get_booked_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SC-AppointmentService/internal/policy"
)

// UseCase use case для получения занятых интервалов.
// Лента отдаёт только интервалы - имена и email клиентов наружу не выходят.
type UseCase struct {
	appointmentRepo AppointmentRepository
	policy          *policy.Policy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, p *policy.Policy, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		policy:          p,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения занятых интервалов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now().In(uc.policy.Location())

	// Пустой диапазон → окно предварительной записи от текущего момента
	from := req.From
	if from.IsZero() {
		from = now
	}
	to := req.To
	if to.IsZero() {
		to = now.AddDate(0, 0, uc.policy.MaxAdvanceDays()+1)
	}

	if !to.After(from) {
		uc.logger.Warn("GetBookedSlots: invalid range from=%s to=%s", from, to)
		return nil, fmt.Errorf("%w: 'to' must be after 'from'", ErrInvalidInput)
	}

	appointments, err := uc.appointmentRepo.GetBookedBetween(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetBookedSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	slots := make([]BookedSlot, 0, len(appointments))
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		interval := appt.Interval()
		slots = append(slots, BookedSlot{Start: interval.Start, End: interval.End})
	}

	uc.logger.Info("GetBookedSlots: %d booked slots in [%s, %s)",
		len(slots), from.Format("2006-01-02"), to.Format("2006-01-02"))

	return &Response{From: from, To: to, Slots: slots}, nil
}
