package availability

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
)

// SlotsClient интерфейс клиента ленты занятых слотов
type SlotsClient interface {
	GetBookedSlots(ctx context.Context, from, to time.Time) ([]domain.Interval, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Source кэширует занятые интервалы, полученные от бэкенда.
// Движок только потребляет результат - механика запроса принадлежит
// клиенту. Страница дёргает Refresh при смене услуги или видимого
// диапазона календаря; при ошибке обновления кэш остаётся прежним,
// чтобы выбор слотов продолжал работать по последним известным данным.
type Source struct {
	mu     sync.Mutex
	client SlotsClient
	booked []domain.Interval
	log    Logger
}

// NewSource создает пустой источник занятых интервалов
func NewSource(client SlotsClient, log Logger) *Source {
	return &Source{client: client, log: log}
}

// Refresh перечитывает занятые интервалы для диапазона [from, to)
func (s *Source) Refresh(ctx context.Context, from, to time.Time) error {
	booked, err := s.client.GetBookedSlots(ctx, from, to)
	if err != nil {
		s.log.Warn("availability: refresh failed, keeping %d cached intervals: %v", len(s.Booked()), err)
		return err
	}

	s.mu.Lock()
	s.booked = booked
	s.mu.Unlock()

	s.log.Info("availability: refreshed, %d booked intervals in range", len(booked))
	return nil
}

// Booked возвращает копию закэшированных занятых интервалов
func (s *Source) Booked() []domain.Interval {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Interval, len(s.booked))
	copy(out, s.booked)
	return out
}
