package get_appointment

import (
	"time"

	getAppointment "github.com/m04kA/SC-AppointmentService/internal/usecase/get_appointment"
)

// AppointmentResponse данные записи для страницы подтверждения
type AppointmentResponse struct {
	Reference       string  `json:"reference"`
	ClientName      string  `json:"clientName"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	StartTime       string  `json:"startTime"` // RFC3339
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	CanBeCancelled  bool    `json:"canBeCancelled"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		Reference:       resp.Reference,
		ClientName:      resp.ClientName,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		StartTime:       resp.StartTime.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CanBeCancelled:  resp.CanBeCancelled,
	}
}
