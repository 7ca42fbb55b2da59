package create_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
	"github.com/m04kA/SC-AppointmentService/internal/engine/bookingform"
)

// validateRequest валидирует входные данные запроса.
// Клиентский движок уже проверил форму, но сервер - источник истины
// и повторяет проверки, не доверяя клиенту.
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(name) < domain.MinClientNameLength || len(name) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName must be between %d and %d characters",
			ErrInvalidInput, domain.MinClientNameLength, domain.MaxClientNameLength)
	}

	email := strings.TrimSpace(req.ClientEmail)
	if email == "" {
		return fmt.Errorf("%w: clientEmail is required", ErrInvalidInput)
	}
	// Та же проверка формы адреса, что и в клиентском движке
	if !bookingform.IsValidEmail(email) {
		return fmt.Errorf("%w: clientEmail is malformed", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	return nil
}
