package policy

import (
	"fmt"
	"time"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
)

// Config параметры часов работы и окна предварительной записи
type Config struct {
	OperatingDays  []time.Weekday // Дни недели, в которые открыт салон
	OpenTime       string         // Время открытия, "HH:MM"
	CloseTime      string         // Время закрытия, "HH:MM"
	Timezone       string         // IANA-идентификатор таймзоны салона
	MaxAdvanceDays int            // Максимум дней вперёд для записи
}

// Policy описывает часы работы салона и окно предварительной записи.
// Все сравнения времени выполняются в фиксированной таймзоне салона -
// движок никогда не полагается на локальную зону вызывающего кода.
// Policy неизменяема после создания и не имеет побочных эффектов.
type Policy struct {
	operatingDays  map[time.Weekday]bool
	openMinutes    int // Минуты от полуночи
	closeMinutes   int
	location       *time.Location
	maxAdvanceDays int
}

// New создает политику из конфигурации.
// Некорректная конфигурация - это ошибка программирования на старте,
// а не ситуация времени выполнения, поэтому здесь полная проверка.
func New(cfg Config) (*Policy, error) {
	if len(cfg.OperatingDays) == 0 {
		return nil, fmt.Errorf("policy: at least one operating day is required")
	}

	openMinutes, err := parseTimeOfDay(cfg.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("policy: invalid open time %q: %w", cfg.OpenTime, err)
	}

	closeMinutes, err := parseTimeOfDay(cfg.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("policy: invalid close time %q: %w", cfg.CloseTime, err)
	}

	if openMinutes >= closeMinutes {
		return nil, fmt.Errorf("policy: open time %s must be before close time %s", cfg.OpenTime, cfg.CloseTime)
	}

	if cfg.MaxAdvanceDays < domain.MinMaxAdvanceDays || cfg.MaxAdvanceDays > domain.MaxMaxAdvanceDays {
		return nil, fmt.Errorf("policy: maxAdvanceDays must be between %d and %d, got %d",
			domain.MinMaxAdvanceDays, domain.MaxMaxAdvanceDays, cfg.MaxAdvanceDays)
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("policy: invalid timezone %q: %w", cfg.Timezone, err)
	}

	operatingDays := make(map[time.Weekday]bool, len(cfg.OperatingDays))
	for _, day := range cfg.OperatingDays {
		operatingDays[day] = true
	}

	return &Policy{
		operatingDays:  operatingDays,
		openMinutes:    openMinutes,
		closeMinutes:   closeMinutes,
		location:       location,
		maxAdvanceDays: cfg.MaxAdvanceDays,
	}, nil
}

// DefaultConfig возвращает конфигурацию по умолчанию:
// понедельник-суббота, 09:00-20:00, запись максимум за 30 дней
func DefaultConfig() Config {
	return Config{
		OperatingDays: []time.Weekday{
			time.Monday,
			time.Tuesday,
			time.Wednesday,
			time.Thursday,
			time.Friday,
			time.Saturday,
		},
		OpenTime:       domain.DefaultOpenTime,
		CloseTime:      domain.DefaultCloseTime,
		Timezone:       domain.DefaultTimezone,
		MaxAdvanceDays: domain.DefaultMaxAdvanceDays,
	}
}

// IsOperatingDay returns true if the instant falls on an operating weekday
// (evaluated in the policy timezone)
func (p *Policy) IsOperatingDay(t time.Time) bool {
	return p.operatingDays[t.In(p.location).Weekday()]
}

// IsWithinHours returns true if openTime <= timeOfDay(t) < closeTime
// (evaluated in the policy timezone)
func (p *Policy) IsWithinHours(t time.Time) bool {
	local := t.In(p.location)
	minutes := local.Hour()*60 + local.Minute()
	return minutes >= p.openMinutes && minutes < p.closeMinutes
}

// Location returns the fixed operating timezone
func (p *Policy) Location() *time.Location {
	return p.location
}

// MaxAdvanceDays returns the lead-time ceiling in days
func (p *Policy) MaxAdvanceDays() int {
	return p.maxAdvanceDays
}

// parseTimeOfDay парсит "HH:MM" в минуты от полуночи
func parseTimeOfDay(value string) (int, error) {
	t, err := time.Parse(domain.TimeFormat, value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
