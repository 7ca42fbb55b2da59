package create_appointment

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	createAppointment "github.com/m04kA/SC-AppointmentService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model.
// Service приходит сырым значением select-контрола (ID услуги строкой),
// StartTime - в RFC3339.
type CreateAppointmentRequest struct {
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	Service     string `json:"service"`
	StartTime   string `json:"startTime"`
}

// AppointmentResponse HTTP response model.
// Redirect - цель перехода для страницы после успешной записи.
type AppointmentResponse struct {
	Reference       string  `json:"reference"`
	ClientName      string  `json:"clientName"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Redirect        string  `json:"redirect"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	serviceID, err := strconv.ParseInt(strings.TrimSpace(r.Service), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid service id %q: %w", r.Service, err)
	}

	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q: %w", r.StartTime, err)
	}

	return &createAppointment.Request{
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ServiceID:   serviceID,
		StartTime:   startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response, redirect string) *AppointmentResponse {
	return &AppointmentResponse{
		Reference:       resp.Reference,
		ClientName:      resp.ClientName,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		StartTime:       resp.StartTime.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Redirect:        redirect,
	}
}
