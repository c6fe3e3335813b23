package references

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type ReferenceService interface {
	VehicleTypes(ctx context.Context) ([]domain.VehicleType, error)
	PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}

type ItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Handler struct {
	service ReferenceService
	logger  Logger
}

func NewHandler(service ReferenceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// VehicleTypes GET /api/v1/references/vehicle-types
func (h *Handler) VehicleTypes(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.VehicleTypes(r.Context())
	if err != nil {
		h.logger.Error("GET /references/vehicle-types - Failed to list vehicle types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]ItemResponse, 0, len(list))
	for _, t := range list {
		response = append(response, ItemResponse(t))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}

// PaymentMethods GET /api/v1/references/payment-methods
func (h *Handler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.PaymentMethods(r.Context())
	if err != nil {
		h.logger.Error("GET /references/payment-methods - Failed to list payment methods: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]ItemResponse, 0, len(list))
	for _, m := range list {
		response = append(response, ItemResponse(m))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}
