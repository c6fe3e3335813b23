package list_parking_sessions

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const msgInvalidActive = "параметр active должен быть true или false"

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/parking-sessions?active=true|false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var filter domain.SessionFilter
	if raw := r.URL.Query().Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /parking-sessions - Invalid active filter: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidActive)
			return
		}
		filter.Active = &active
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /parking-sessions - Failed to list sessions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]handlers.SessionResponse, 0, len(list))
	for _, s := range list {
		response = append(response, handlers.NewSessionResponse(s))
	}

	h.logger.Info("GET /parking-sessions - Sessions listed: count=%d", len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
