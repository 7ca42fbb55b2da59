package get_appointment

import "time"

// Request модель запроса записи по публичному идентификатору
type Request struct {
	Reference string
}

// Response модель ответа с данными записи для страницы подтверждения.
// Email клиента наружу не отдаётся - страница доступна по ссылке без
// авторизации.
type Response struct {
	Reference       string
	ClientName      string
	ServiceName     string
	ServicePrice    float64
	StartTime       time.Time
	DurationMinutes int
	Status          string
	CanBeCancelled  bool
	CreatedAt       time.Time
}
