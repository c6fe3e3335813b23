package update_parking_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	updateSession "github.com/m04kA/SMC-ParkingService/internal/usecase/update_parking_session"
)

const (
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные сессии"
	msgNotFound           = "сессия не найдена"
	msgReferenceNotFound  = "автомобиль, место или тариф не найдены"
)

type Handler struct {
	useCase UpdateSessionUseCase
	logger  Logger
}

func NewHandler(useCase UpdateSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/parking-sessions/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /parking-sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req UpdateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /parking-sessions/{id} - Invalid request body: session_id=%d, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Без аутентификации оператор пустой
	operatorID, _ := middleware.GetOperatorID(r.Context())

	if err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID, operatorID)); err != nil {
		switch {
		case errors.Is(err, updateSession.ErrSessionNotFound):
			h.logger.Warn("PUT /parking-sessions/{id} - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateSession.ErrInvalidInput):
			h.logger.Warn("PUT /parking-sessions/{id} - Invalid input: session_id=%d, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateSession.ErrReferenceNotFound):
			h.logger.Warn("PUT /parking-sessions/{id} - Reference not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgReferenceNotFound)

		default:
			h.logger.Error("PUT /parking-sessions/{id} - Failed to update session: session_id=%d, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /parking-sessions/{id} - Session updated: session_id=%d", sessionID)
	handlers.RespondNoContent(w)
}
