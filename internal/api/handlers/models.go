package handlers

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Money денежная сумма числом с двумя знаками после запятой
func Money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(domain.MoneyPlaces))
}

// MoneyPtr то же, что Money, nil остаётся nil
func MoneyPtr(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	m := Money(*d)
	return &m
}

// NaiveTimePtr время для ответа, nil остаётся nil
func NaiveTimePtr(t *time.Time) *types.NaiveTime {
	if t == nil {
		return nil
	}
	n := types.NewNaiveTime(*t)
	return &n
}

// SessionResponse представление парковочной сессии в API
type SessionResponse struct {
	ID        int64            `json:"id"`
	VehicleID int64            `json:"vehicle_id"`
	SpaceID   int64            `json:"space_id"`
	TariffID  int64            `json:"tariff_id"`
	TimeIn    types.NaiveTime  `json:"time_in"`
	TimeOut   *types.NaiveTime `json:"time_out"`
	TotalCost *json.Number     `json:"total_cost"`
	CreatedAt types.NaiveTime  `json:"created_at"`
}

func NewSessionResponse(s *domain.ParkingSession) SessionResponse {
	return SessionResponse{
		ID:        s.ID,
		VehicleID: s.VehicleID,
		SpaceID:   s.SpaceID,
		TariffID:  s.TariffID,
		TimeIn:    types.NewNaiveTime(s.TimeIn),
		TimeOut:   NaiveTimePtr(s.TimeOut),
		TotalCost: MoneyPtr(s.TotalCost),
		CreatedAt: types.NewNaiveTime(s.CreatedAt),
	}
}
