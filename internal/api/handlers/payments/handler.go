package payments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	paymentsService "github.com/m04kA/SMC-ParkingService/internal/service/payments"
)

const (
	msgInvalidPaymentID   = "некорректный ID платежа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные платежа"
	msgNotFound           = "платёж не найден"
	msgSessionNotFound    = "сессия парковки не найдена"
	msgAmountUnavailable  = "сумма платежа не указана и не может быть получена из сессии (total_cost не установлен)"
	msgReferenceNotFound  = "сессия или способ оплаты не найдены"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/payments
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	payment, err := h.service.Create(r.Context(), req.toService())
	if err != nil {
		h.respondError(w, "POST /payments", err)
		return
	}

	h.logger.Info("POST /payments - Payment created: payment_id=%d, session_id=%d", payment.ID, payment.SessionID)
	handlers.RespondJSON(w, http.StatusOK, fromDomain(payment))
}

// List GET /api/v1/payments
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, "GET /payments", err)
		return
	}

	response := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		response = append(response, fromDomain(p))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}

// Get GET /api/v1/payments/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "GET /payments/{id}")
	if !ok {
		return
	}

	payment, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /payments/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromDomain(payment))
}

// Update PUT /api/v1/payments/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "PUT /payments/{id}")
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /payments/{id} - Invalid request body: payment_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), id, req.toService()); err != nil {
		h.respondError(w, "PUT /payments/{id}", err)
		return
	}

	h.logger.Info("PUT /payments/{id} - Payment updated: payment_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid payment ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, paymentsService.ErrPaymentNotFound):
		h.logger.Warn("%s - Payment not found", route)
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, paymentsService.ErrSessionNotFound):
		h.logger.Warn("%s - Session not found", route)
		handlers.RespondNotFound(w, msgSessionNotFound)
	case errors.Is(err, paymentsService.ErrAmountUnavailable):
		h.logger.Warn("%s - Amount unavailable", route)
		handlers.RespondBadRequest(w, msgAmountUnavailable)
	case errors.Is(err, paymentsService.ErrReferenceNotFound):
		h.logger.Warn("%s - Session or method not found", route)
		handlers.RespondNotFound(w, msgReferenceNotFound)
	case errors.Is(err, paymentsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
