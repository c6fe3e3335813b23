package create_parking_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	createSession "github.com/m04kA/SMC-ParkingService/internal/usecase/create_parking_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные сессии"
	msgInvalidInterval    = "время выезда должно быть позже времени въезда"
	msgTariffNotFound     = "тариф не найден"
	msgReferenceNotFound  = "автомобиль, место или тариф не найдены"
)

type Handler struct {
	useCase CreateSessionUseCase
	logger  Logger
}

func NewHandler(useCase CreateSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/parking-sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /parking-sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createSession.ErrInvalidInput):
			h.logger.Warn("POST /parking-sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createSession.ErrInvalidInterval):
			h.logger.Warn("POST /parking-sessions - Invalid interval: vehicle_id=%d", req.VehicleID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createSession.ErrTariffNotFound):
			h.logger.Warn("POST /parking-sessions - Tariff not found: tariff_id=%d", req.TariffID)
			handlers.RespondNotFound(w, msgTariffNotFound)

		case errors.Is(err, createSession.ErrReferenceNotFound):
			h.logger.Warn("POST /parking-sessions - Reference not found: vehicle_id=%d, space_id=%d, tariff_id=%d",
				req.VehicleID, req.SpaceID, req.TariffID)
			handlers.RespondNotFound(w, msgReferenceNotFound)

		default:
			h.logger.Error("POST /parking-sessions - Failed to create session: vehicle_id=%d, error=%v", req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /parking-sessions - Session created: session_id=%d, vehicle_id=%d", result.ID, result.VehicleID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
