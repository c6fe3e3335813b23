package create_parking_session

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса на въезд
type Request struct {
	VehicleID int64
	SpaceID   int64
	TariffID  int64
	TimeIn    *time.Time
	TimeOut   *time.Time // если указано, стоимость считается сразу
}

// Response созданная сессия
type Response struct {
	ID        int64
	VehicleID int64
	SpaceID   int64
	TariffID  int64
	TimeIn    time.Time
	TimeOut   *time.Time
	TotalCost *decimal.Decimal
	CreatedAt time.Time
}

func fromDomain(s *domain.ParkingSession) *Response {
	return &Response{
		ID:        s.ID,
		VehicleID: s.VehicleID,
		SpaceID:   s.SpaceID,
		TariffID:  s.TariffID,
		TimeIn:    s.TimeIn,
		TimeOut:   s.TimeOut,
		TotalCost: s.TotalCost,
		CreatedAt: s.CreatedAt,
	}
}
