package tariffs

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	tariffsService "github.com/m04kA/SMC-ParkingService/internal/service/tariffs"
)

const (
	msgInvalidTariffID    = "некорректный ID тарифа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные тарифа"
	msgNotFound           = "тариф не найден"
	msgInUse              = "тариф используется в парковочных сессиях"
)

type Handler struct {
	service TariffService
	logger  Logger
}

func NewHandler(service TariffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/tariffs
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTariffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tariffs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tariff, err := h.service.Create(r.Context(), req.toService())
	if err != nil {
		h.respondError(w, "POST /tariffs", err)
		return
	}

	h.logger.Info("POST /tariffs - Tariff created: tariff_id=%d", tariff.ID)
	handlers.RespondJSON(w, http.StatusOK, fromDomain(tariff))
}

// List GET /api/v1/tariffs
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, "GET /tariffs", err)
		return
	}

	response := make([]TariffResponse, 0, len(list))
	for _, t := range list {
		response = append(response, fromDomain(t))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}

// Get GET /api/v1/tariffs/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "GET /tariffs/{id}")
	if !ok {
		return
	}

	tariff, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /tariffs/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromDomain(tariff))
}

// Update PUT /api/v1/tariffs/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "PUT /tariffs/{id}")
	if !ok {
		return
	}

	var req UpdateTariffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tariffs/{id} - Invalid request body: tariff_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), id, req.toService()); err != nil {
		h.respondError(w, "PUT /tariffs/{id}", err)
		return
	}

	h.logger.Info("PUT /tariffs/{id} - Tariff updated: tariff_id=%d", id)
	handlers.RespondNoContent(w)
}

// Delete DELETE /api/v1/tariffs/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "DELETE /tariffs/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /tariffs/{id}", err)
		return
	}

	h.logger.Info("DELETE /tariffs/{id} - Tariff deleted: tariff_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid tariff ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidTariffID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, tariffsService.ErrTariffNotFound):
		h.logger.Warn("%s - Tariff not found", route)
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, tariffsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	case errors.Is(err, tariffsService.ErrTariffInUse):
		h.logger.Warn("%s - Tariff in use", route)
		handlers.RespondConflict(w, msgInUse)
	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
