package selection

import (
	"sync"
	"time"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
	"github.com/m04kA/SC-AppointmentService/internal/engine/slotvalidator"
)

// Listener получает уведомления об изменении активного выбора.
// nil означает, что выбор снят. Слой отображения подписывается, чтобы
// перерисовать подсветку слота и включить/выключить кнопку отправки -
// сам движок презентацию не трогает.
type Listener interface {
	SelectionChanged(sel *domain.Selection)
}

// ListenerFunc адаптер, позволяющий использовать функцию как Listener
type ListenerFunc func(sel *domain.Selection)

// SelectionChanged вызывает функцию-адаптер
func (f ListenerFunc) SelectionChanged(sel *domain.Selection) {
	f(sel)
}

// State хранит не более одного активного выбора слота.
// Инвариант исключительности: успешный Select всегда заменяет предыдущий
// выбор, отклонённый - оставляет его нетронутым. Частичных состояний нет.
type State struct {
	mu        sync.Mutex
	validator *slotvalidator.Validator
	current   *domain.Selection
	listeners []Listener
}

// NewState создает пустое состояние выбора поверх валидатора слотов
func NewState(validator *slotvalidator.Validator) *State {
	return &State{validator: validator}
}

// Subscribe регистрирует получателя уведомлений об изменении выбора
func (s *State) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Select прогоняет кандидата через валидатор. При успехе заменяет текущий
// выбор новым и возвращает его копию; при отказе возвращает причину, не
// меняя предыдущий выбор. Выбор никогда не происходит "частично".
func (s *State) Select(candidate domain.Interval, now time.Time, booked []domain.Interval) (*domain.Selection, error) {
	if err := s.validator.Validate(candidate, now, booked); err != nil {
		return nil, err
	}

	sel := &domain.Selection{
		Start:  candidate.Start,
		End:    candidate.End,
		Status: domain.SelectionPending,
	}

	s.mu.Lock()
	s.current = sel
	s.mu.Unlock()

	s.notify(sel)
	return copySelection(sel), nil
}

// Clear безусловно снимает активный выбор. Идемпотентна: повторный вызов
// без активного выбора ничего не делает и уведомлений не рассылает.
func (s *State) Clear() {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.mu.Unlock()

	s.notify(nil)
}

// Current возвращает копию активного выбора или nil, если выбора нет
func (s *State) Current() *domain.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySelection(s.current)
}

// notify рассылает уведомление вне мьютекса, чтобы подписчики могли
// безопасно читать Current
func (s *State) notify(sel *domain.Selection) {
	s.mu.Lock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l.SelectionChanged(copySelection(sel))
	}
}

func copySelection(sel *domain.Selection) *domain.Selection {
	if sel == nil {
		return nil
	}
	c := *sel
	return &c
}
