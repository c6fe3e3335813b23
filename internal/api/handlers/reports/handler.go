package reports

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	reportsService "github.com/m04kA/SMC-ParkingService/internal/service/reports"
	"github.com/m04kA/SMC-ParkingService/internal/service/reports/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD или YYYY-MM-DDTHH:MM:SS"
	msgInvalidPeriod = "start_date не может быть позже end_date"
)

// Handler отчёты за произвольный период
type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Revenue GET /api/v1/reports/revenue
func (h *Handler) Revenue(w http.ResponseWriter, r *http.Request) {
	req, ok := h.period(w, r, "GET /reports/revenue")
	if !ok {
		return
	}

	report, err := h.service.Revenue(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /reports/revenue", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromRevenue(report))
}

// Sessions GET /api/v1/reports/sessions
func (h *Handler) Sessions(w http.ResponseWriter, r *http.Request) {
	req, ok := h.period(w, r, "GET /reports/sessions")
	if !ok {
		return
	}

	report, err := h.service.SessionsCount(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /reports/sessions", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromSessions(report))
}

// AverageCheck GET /api/v1/reports/average-check
func (h *Handler) AverageCheck(w http.ResponseWriter, r *http.Request) {
	req, ok := h.period(w, r, "GET /reports/average-check")
	if !ok {
		return
	}

	report, err := h.service.AverageCheck(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /reports/average-check", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromAverageCheck(report))
}

func (h *Handler) period(w http.ResponseWriter, r *http.Request, route string) (models.PeriodRequest, bool) {
	req, err := parsePeriod(r.URL.Query())
	if err != nil {
		h.logger.Warn("%s - Invalid date: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return req, false
	}
	return req, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	if errors.Is(err, reportsService.ErrInvalidPeriod) {
		h.logger.Warn("%s - Invalid period: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	h.logger.Error("%s - Failed to build report: %v", route, err)
	handlers.RespondInternalError(w)
}
