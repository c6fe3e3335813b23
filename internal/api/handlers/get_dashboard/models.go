package get_dashboard

import "github.com/m04kA/SMC-ParkingService/internal/domain"

type PeriodRevenueResponse struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

type PeriodCountResponse struct {
	Period string `json:"period"`
	Count  int64  `json:"count"`
}

// DashboardResponse суммы отдаются числами с плавающей точкой
type DashboardResponse struct {
	TotalRevenue     float64                 `json:"total_revenue"`
	TotalSessions    int64                   `json:"total_sessions"`
	AverageCheck     float64                 `json:"average_check"`
	ActiveSessions   int64                   `json:"active_sessions"`
	FreeSpaces       int64                   `json:"free_spaces"`
	RevenueByPeriod  []PeriodRevenueResponse `json:"revenue_by_period"`
	SessionsByPeriod []PeriodCountResponse   `json:"sessions_by_period"`
}

func FromDomain(d *domain.Dashboard) *DashboardResponse {
	resp := &DashboardResponse{
		TotalRevenue:     d.TotalRevenue.InexactFloat64(),
		TotalSessions:    d.TotalSessions,
		AverageCheck:     d.AverageCheck.InexactFloat64(),
		ActiveSessions:   d.ActiveSessions,
		FreeSpaces:       d.FreeSpaces,
		RevenueByPeriod:  make([]PeriodRevenueResponse, 0, len(d.RevenueByPeriod)),
		SessionsByPeriod: make([]PeriodCountResponse, 0, len(d.SessionsByPeriod)),
	}
	for _, p := range d.RevenueByPeriod {
		resp.RevenueByPeriod = append(resp.RevenueByPeriod, PeriodRevenueResponse{
			Period:  p.Period,
			Revenue: p.Revenue.InexactFloat64(),
		})
	}
	for _, p := range d.SessionsByPeriod {
		resp.SessionsByPeriod = append(resp.SessionsByPeriod, PeriodCountResponse(p))
	}
	return resp
}
