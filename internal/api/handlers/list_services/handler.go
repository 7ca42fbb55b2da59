package list_services

import (
	"net/http"

	"github.com/m04kA/SC-AppointmentService/internal/api/handlers"
)

// Handler обработчик каталога услуг
type Handler struct {
	catalog ServicesCatalog
	logger  Logger
}

// NewHandler создает обработчик каталога услуг
func NewHandler(catalog ServicesCatalog, logger Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.List(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Returned %d services", len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}
