package create_appointment

import "time"

// Request модель запроса на создание записи
type Request struct {
	ClientName  string    // Имя клиента
	ClientEmail string    // Email клиента
	ServiceID   int64     // ID услуги
	StartTime   time.Time // Время начала слота
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64     // ID созданной записи
	Reference       string    // Публичный идентификатор (UUID)
	ClientName      string    // Имя клиента
	ClientEmail     string    // Email клиента
	ServiceID       int64     // ID услуги
	ServiceName     string    // Название услуги (денормализовано)
	ServicePrice    float64   // Цена услуги (денормализовано)
	StartTime       time.Time // Время начала
	DurationMinutes int       // Длительность в минутах
	Status          string    // Статус записи
	CreatedAt       time.Time // Время создания
}
