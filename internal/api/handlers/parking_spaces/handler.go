package parking_spaces

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	spacesService "github.com/m04kA/SMC-ParkingService/internal/service/parking_spaces"
)

const (
	msgInvalidSpaceID     = "некорректный ID парковочного места"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные парковочного места"
	msgNotFound           = "парковочное место не найдено"
	msgNumberTaken        = "место с таким номером уже существует"
	msgUnknownType        = "тип транспорта не найден"
	msgInUse              = "место используется в парковочных сессиях"
)

type Handler struct {
	service SpaceService
	logger  Logger
}

func NewHandler(service SpaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/parking-spaces
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /parking-spaces - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	space, err := h.service.Create(r.Context(), req.toService())
	if err != nil {
		h.respondError(w, "POST /parking-spaces", err)
		return
	}

	h.logger.Info("POST /parking-spaces - Space created: space_id=%d, number=%s", space.ID, space.Number)
	handlers.RespondJSON(w, http.StatusOK, fromDomain(space))
}

// List GET /api/v1/parking-spaces
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, "GET /parking-spaces", err)
		return
	}

	response := make([]SpaceResponse, 0, len(list))
	for _, s := range list {
		response = append(response, fromDomain(s))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}

// Get GET /api/v1/parking-spaces/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "GET /parking-spaces/{id}")
	if !ok {
		return
	}

	space, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /parking-spaces/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromDomain(space))
}

// Update PUT /api/v1/parking-spaces/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "PUT /parking-spaces/{id}")
	if !ok {
		return
	}

	var req UpdateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /parking-spaces/{id} - Invalid request body: space_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), id, req.toService()); err != nil {
		h.respondError(w, "PUT /parking-spaces/{id}", err)
		return
	}

	h.logger.Info("PUT /parking-spaces/{id} - Space updated: space_id=%d", id)
	handlers.RespondNoContent(w)
}

// Delete DELETE /api/v1/parking-spaces/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "DELETE /parking-spaces/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /parking-spaces/{id}", err)
		return
	}

	h.logger.Info("DELETE /parking-spaces/{id} - Space deleted: space_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid space ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, spacesService.ErrSpaceNotFound):
		h.logger.Warn("%s - Space not found", route)
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, spacesService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	case errors.Is(err, spacesService.ErrNumberTaken):
		h.logger.Warn("%s - Number taken", route)
		handlers.RespondConflict(w, msgNumberTaken)
	case errors.Is(err, spacesService.ErrUnknownType):
		h.logger.Warn("%s - Unknown vehicle type", route)
		handlers.RespondNotFound(w, msgUnknownType)
	case errors.Is(err, spacesService.ErrSpaceInUse):
		h.logger.Warn("%s - Space in use", route)
		handlers.RespondConflict(w, msgInUse)
	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
