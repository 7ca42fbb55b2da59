package appointmentapi

// CreateAppointmentRequest тело POST /api/v1/appointments.
// Поля формы передаются как есть, время начала слота - в RFC3339.
type CreateAppointmentRequest struct {
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	Service     string `json:"service"`
	StartTime   string `json:"startTime"`
}

// CreateAppointmentResponse успешный ответ на создание записи
type CreateAppointmentResponse struct {
	Reference string `json:"reference"`
	Redirect  string `json:"redirect"`
}

// BookedSlot занятый интервал из ленты занятых слотов
type BookedSlot struct {
	StartTime string `json:"startTime"` // RFC3339
	EndTime   string `json:"endTime"`   // RFC3339
}

// BookedSlotsResponse ответ GET /api/v1/appointments/booked
type BookedSlotsResponse struct {
	Slots []BookedSlot `json:"slots"`
}

// ServiceItem услуга из каталога
type ServiceItem struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServicesResponse ответ GET /api/v1/services
type ServicesResponse struct {
	Services []ServiceItem `json:"services"`
}

// ErrorResponse модель ошибки сервера
type ErrorResponse struct {
	Error string `json:"error"`
}
