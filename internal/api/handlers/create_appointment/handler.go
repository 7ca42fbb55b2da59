package create_appointment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SC-AppointmentService/internal/api/handlers"
	createAppointment "github.com/m04kA/SC-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidFields      = "invalid service or start time format"
	msgInvalidInput       = "please check the form fields and try again"
	msgServiceNotFound    = "the selected service was not found"
	msgPastDate           = "the selected time is in the past"
	msgClosedDay          = "we are closed on the selected day"
	msgOutsideHours       = "the selected time is outside our working hours"
	msgBeyondLeadWindow   = "appointments can only be booked up to 30 days in advance"
	msgSlotTaken          = "this time slot is no longer available"
)

// Handler обработчик создания записи
type Handler struct {
	useCase        CreateAppointmentUseCase
	redirectTarget string
	logger         Logger
}

// NewHandler создает обработчик. redirectTarget - базовый путь страницы
// подтверждения, к нему добавляется reference созданной записи.
func NewHandler(useCase CreateAppointmentUseCase, redirectTarget string, logger Logger) *Handler {
	return &Handler{
		useCase:        useCase,
		redirectTarget: redirectTarget,
		logger:         logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: client=%s", req.ClientName)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service=%s", req.Service)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrPastDate):
			h.logger.Warn("POST /appointments - Past date: start=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrClosedDay):
			h.logger.Warn("POST /appointments - Closed day: start=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, createAppointment.ErrOutsideHours):
			h.logger.Warn("POST /appointments - Outside hours: start=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createAppointment.ErrBeyondLeadWindow):
			h.logger.Warn("POST /appointments - Beyond lead window: start=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgBeyondLeadWindow)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client=%s, error=%v",
				req.ClientName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	redirect := fmt.Sprintf("%s?ref=%s", h.redirectTarget, result.Reference)
	response := FromUseCaseResponse(result, redirect)

	h.logger.Info("POST /appointments - Appointment created: reference=%s, client=%s",
		result.Reference, result.ClientName)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
