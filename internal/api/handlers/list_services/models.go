package list_services

import "github.com/m04kA/SC-AppointmentService/internal/domain"

// ServiceResponse услуга каталога в ответе API
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServicesResponse ответ со списком услуг
type ServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices конвертирует доменные услуги в HTTP response
func FromDomainServices(services []*domain.Service) *ServicesResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Description:     svc.Description,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		})
	}
	return &ServicesResponse{Services: out}
}
