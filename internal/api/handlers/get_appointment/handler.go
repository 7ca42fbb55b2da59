package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SC-AppointmentService/internal/api/handlers"
	getAppointment "github.com/m04kA/SC-AppointmentService/internal/usecase/get_appointment"
)

const (
	msgInvalidReference    = "invalid appointment reference"
	msgAppointmentNotFound = "appointment not found"
)

// Handler обработчик страницы подтверждения записи
type Handler struct {
	useCase GetAppointmentUseCase
	logger  Logger
}

// NewHandler создает обработчик получения записи
func NewHandler(useCase GetAppointmentUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle GET /api/v1/appointments/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	result, err := h.useCase.Execute(r.Context(), &getAppointment.Request{Reference: reference})
	if err != nil {
		switch {
		case errors.Is(err, getAppointment.ErrInvalidInput):
			h.logger.Warn("GET /appointments/{reference} - Invalid reference: %s", reference)
			handlers.RespondBadRequest(w, msgInvalidReference)

		case errors.Is(err, getAppointment.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{reference} - Not found: %s", reference)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("GET /appointments/{reference} - Failed to get appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{reference} - Returned appointment reference=%s", result.Reference)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
