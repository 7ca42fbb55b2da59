package get_booked_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SC-AppointmentService/internal/api/handlers"
	getBookedSlots "github.com/m04kA/SC-AppointmentService/internal/usecase/get_booked_slots"
)

const (
	msgInvalidFrom  = "invalid 'from' parameter, expected RFC3339 timestamp"
	msgInvalidTo    = "invalid 'to' parameter, expected RFC3339 timestamp"
	msgInvalidRange = "'to' must be after 'from'"
)

// Handler обработчик ленты занятых слотов
type Handler struct {
	useCase GetBookedSlotsUseCase
	logger  Logger
}

// NewHandler создает обработчик ленты занятых слотов
func NewHandler(useCase GetBookedSlotsUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle GET /api/v1/appointments/booked
// Query params: from, to (опциональные, RFC3339; по умолчанию окно записи от "сейчас")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getBookedSlots.Request{}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.logger.Warn("GET /appointments/booked - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.From = from
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.logger.Warn("GET /appointments/booked - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		req.To = to
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getBookedSlots.ErrInvalidInput) {
			h.logger.Warn("GET /appointments/booked - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.logger.Error("GET /appointments/booked - Failed to get booked slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/booked - Returned %d booked slots", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
