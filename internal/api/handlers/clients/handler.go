package clients

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	clientsService "github.com/m04kA/SMC-ParkingService/internal/service/clients"
)

const (
	msgInvalidClientID    = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные клиента"
	msgNotFound           = "клиент не найден"
)

// Handler CRUD клиентов (без удаления)
type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/clients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.Create(r.Context(), req.toService())
	if err != nil {
		h.respondError(w, "POST /clients", err)
		return
	}

	h.logger.Info("POST /clients - Client created: client_id=%d", client.ID)
	handlers.RespondJSON(w, http.StatusOK, fromDomain(client))
}

// List GET /api/v1/clients
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, "GET /clients", err)
		return
	}

	response := make([]ClientResponse, 0, len(list))
	for _, c := range list {
		response = append(response, fromDomain(c))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}

// Get GET /api/v1/clients/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	client, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /clients/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromDomain(client))
}

// Update PUT /api/v1/clients/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req UpdateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid request body: client_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), id, req.toService()); err != nil {
		h.respondError(w, "PUT /clients/{id}", err)
		return
	}

	h.logger.Info("PUT /clients/{id} - Client updated: client_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, clientsService.ErrClientNotFound):
		h.logger.Warn("%s - Client not found", route)
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, clientsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
