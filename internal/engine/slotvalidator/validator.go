package slotvalidator

import (
	"time"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
	"github.com/m04kA/SC-AppointmentService/internal/policy"
)

// Validator проверяет, является ли кандидат легальным слотом для записи.
// Не имеет состояния и побочных эффектов - один и тот же вход всегда даёт
// один и тот же результат, что упрощает изолированное тестирование.
type Validator struct {
	policy *policy.Policy
}

// New создает валидатор слотов поверх политики часов работы
func New(p *policy.Policy) *Validator {
	return &Validator{policy: p}
}

// Validate проверяет кандидата и возвращает nil (слот допустим) либо первую
// не прошедшую проверку. Порядок проверок фиксирован - от него зависят
// сообщения, которые увидит пользователь:
//
//  1. начало в прошлом            → ErrPastDate
//  2. нерабочий день              → ErrClosedDay
//  3. вне часов работы            → ErrOutsideHours
//  4. дальше окна записи          → ErrBeyondLeadWindow
//  5. пересечение с занятым слотом → ErrSlotTaken
//
// Все сравнения выполняются в таймзоне политики. Окно записи проверяется
// только по началу слота: конец может выходить за границу окна.
func (v *Validator) Validate(candidate domain.Interval, now time.Time, booked []domain.Interval) error {
	if !candidate.IsValid() {
		return ErrInvalidInterval
	}

	localNow := now.In(v.policy.Location())

	// 1. Начало слота не должно быть в прошлом
	if candidate.Start.Before(localNow) {
		return ErrPastDate
	}

	// 2. День должен быть рабочим
	if !v.policy.IsOperatingDay(candidate.Start) {
		return ErrClosedDay
	}

	// 3. Время начала должно попадать в часы работы
	if !v.policy.IsWithinHours(candidate.Start) {
		return ErrOutsideHours
	}

	// 4. Начало слота не должно выходить за окно предварительной записи
	// AddDate по локальному времени, чтобы граница окна оставалась корректной
	// при переходе на летнее время
	maxStart := localNow.AddDate(0, 0, v.policy.MaxAdvanceDays())
	if candidate.Start.After(maxStart) {
		return ErrBeyondLeadWindow
	}

	// 5. Слот не должен пересекаться с уже занятыми интервалами
	for _, b := range booked {
		if candidate.Overlaps(b) {
			return ErrSlotTaken
		}
	}

	return nil
}
