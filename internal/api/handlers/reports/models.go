package reports

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/reports/models"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

type RevenueResponse struct {
	TotalRevenue json.Number     `json:"total_revenue"`
	PeriodStart  types.NaiveTime `json:"period_start"`
	PeriodEnd    types.NaiveTime `json:"period_end"`
}

type SessionsResponse struct {
	TotalSessions int64           `json:"total_sessions"`
	PeriodStart   types.NaiveTime `json:"period_start"`
	PeriodEnd     types.NaiveTime `json:"period_end"`
}

// AverageCheckResponse средний чек не округляется
type AverageCheckResponse struct {
	AverageCheck json.Number     `json:"average_check"`
	PeriodStart  types.NaiveTime `json:"period_start"`
	PeriodEnd    types.NaiveTime `json:"period_end"`
}

// parsePeriod читает start_date и end_date; оба необязательны
func parsePeriod(query url.Values) (models.PeriodRequest, error) {
	var req models.PeriodRequest
	for name, dst := range map[string]**time.Time{"start_date": &req.Start, "end_date": &req.End} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		t, err := types.ParseNaive(raw)
		if err != nil {
			return models.PeriodRequest{}, fmt.Errorf("%s: %w", name, err)
		}
		*dst = &t
	}
	return req, nil
}

func fromRevenue(r *models.RevenueReport) RevenueResponse {
	return RevenueResponse{
		TotalRevenue: handlers.Money(r.TotalRevenue),
		PeriodStart:  types.NewNaiveTime(r.PeriodStart),
		PeriodEnd:    types.NewNaiveTime(r.PeriodEnd),
	}
}

func fromSessions(r *models.SessionsReport) SessionsResponse {
	return SessionsResponse{
		TotalSessions: r.TotalSessions,
		PeriodStart:   types.NewNaiveTime(r.PeriodStart),
		PeriodEnd:     types.NewNaiveTime(r.PeriodEnd),
	}
}

func fromAverageCheck(r *models.AverageCheckReport) AverageCheckResponse {
	return AverageCheckResponse{
		AverageCheck: json.Number(r.AverageCheck.String()),
		PeriodStart:  types.NewNaiveTime(r.PeriodStart),
		PeriodEnd:    types.NewNaiveTime(r.PeriodEnd),
	}
}
