package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParkingSession represents one stay of a vehicle on a parking space.
// TimeOut == nil means the vehicle is still parked.
type ParkingSession struct {
	ID        int64
	VehicleID int64
	SpaceID   int64
	TariffID  int64
	TimeIn    time.Time
	TimeOut   *time.Time
	TotalCost *decimal.Decimal
	CreatedAt time.Time
}

// IsOpen returns true while the vehicle has not checked out
func (s *ParkingSession) IsOpen() bool {
	return s.TimeOut == nil
}

// IsClosed returns true when the session has both a check-out time and a cost,
// i.e. it contributes to revenue
func (s *ParkingSession) IsClosed() bool {
	return s.TimeOut != nil && s.TotalCost != nil
}

// SessionFilter фильтр списка сессий
type SessionFilter struct {
	Active *bool // nil - все, true - только открытые, false - только закрытые
}
