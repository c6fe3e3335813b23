package get_dashboard

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type Handler struct {
	useCase DashboardUseCase
	logger  Logger
}

func NewHandler(useCase DashboardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/dashboard?period=day|week|month
// Неизвестный period обрабатывается как day
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	dashboard, err := h.useCase.Execute(r.Context(), period)
	if err != nil {
		h.logger.Error("GET /reports/dashboard - Failed to build dashboard: period=%q, error=%v", period, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reports/dashboard - Dashboard built: period=%q, active=%d, free=%d",
		period, dashboard.ActiveSessions, dashboard.FreeSpaces)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(dashboard))
}
