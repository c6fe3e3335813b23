package vehicles

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	vehiclesService "github.com/m04kA/SMC-ParkingService/internal/service/vehicles"
)

const (
	msgInvalidVehicleID   = "некорректный ID автомобиля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные автомобиля"
	msgNotFound           = "автомобиль не найден"
	msgPlateTaken         = "автомобиль с таким госномером уже существует"
	msgReferenceNotFound  = "клиент или тип транспорта не найдены"
	msgInUse              = "автомобиль используется в парковочных сессиях"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/vehicles
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	vehicle, err := h.service.Create(r.Context(), req.toService())
	if err != nil {
		h.respondError(w, "POST /vehicles", err)
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created: vehicle_id=%d, client_id=%d", vehicle.ID, vehicle.ClientID)
	handlers.RespondJSON(w, http.StatusOK, fromDomain(vehicle))
}

// List GET /api/v1/vehicles
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, "GET /vehicles", err)
		return
	}

	response := make([]VehicleResponse, 0, len(list))
	for _, v := range list {
		response = append(response, fromDomain(v))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}

// Get GET /api/v1/vehicles/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "GET /vehicles/{id}")
	if !ok {
		return
	}

	vehicle, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /vehicles/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromDomain(vehicle))
}

// Update PUT /api/v1/vehicles/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "PUT /vehicles/{id}")
	if !ok {
		return
	}

	var req UpdateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /vehicles/{id} - Invalid request body: vehicle_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), id, req.toService()); err != nil {
		h.respondError(w, "PUT /vehicles/{id}", err)
		return
	}

	h.logger.Info("PUT /vehicles/{id} - Vehicle updated: vehicle_id=%d", id)
	handlers.RespondNoContent(w)
}

// Delete DELETE /api/v1/vehicles/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "DELETE /vehicles/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /vehicles/{id}", err)
		return
	}

	h.logger.Info("DELETE /vehicles/{id} - Vehicle deleted: vehicle_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid vehicle ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, vehiclesService.ErrVehicleNotFound):
		h.logger.Warn("%s - Vehicle not found", route)
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, vehiclesService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	case errors.Is(err, vehiclesService.ErrPlateTaken):
		h.logger.Warn("%s - License plate taken", route)
		handlers.RespondConflict(w, msgPlateTaken)
	case errors.Is(err, vehiclesService.ErrReferenceNotFound):
		h.logger.Warn("%s - Client or vehicle type not found", route)
		handlers.RespondNotFound(w, msgReferenceNotFound)
	case errors.Is(err, vehiclesService.ErrVehicleInUse):
		h.logger.Warn("%s - Vehicle in use", route)
		handlers.RespondConflict(w, msgInUse)
	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
