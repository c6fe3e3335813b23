package update_parking_session

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Request частичное обновление сессии: nil поля не меняются
type Request struct {
	ID         int64
	VehicleID  *int64
	SpaceID    *int64
	TariffID   *int64
	TimeIn     *time.Time
	TimeOut    *time.Time
	TotalCost  *decimal.Decimal // явная стоимость имеет приоритет над расчётной
	OperatorID string           // subject токена, пусто без аутентификации
}

// applyFields переносит в сессию всё, кроме time_out и total_cost
func (r *Request) applyFields(s *domain.ParkingSession) {
	if r.VehicleID != nil {
		s.VehicleID = *r.VehicleID
	}
	if r.SpaceID != nil {
		s.SpaceID = *r.SpaceID
	}
	if r.TariffID != nil {
		s.TariffID = *r.TariffID
	}
	if r.TimeIn != nil {
		s.TimeIn = types.ToNaive(*r.TimeIn)
	}
}
