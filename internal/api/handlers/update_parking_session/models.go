package update_parking_session

import (
	"github.com/shopspring/decimal"

	updateSession "github.com/m04kA/SMC-ParkingService/internal/usecase/update_parking_session"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// UpdateSessionRequest все поля опциональны
type UpdateSessionRequest struct {
	VehicleID *int64           `json:"vehicle_id"`
	SpaceID   *int64           `json:"space_id"`
	TariffID  *int64           `json:"tariff_id"`
	TimeIn    *types.NaiveTime `json:"time_in"`
	TimeOut   *types.NaiveTime `json:"time_out"`
	TotalCost *decimal.Decimal `json:"total_cost"`
}

func (r *UpdateSessionRequest) ToUseCaseRequest(id int64, operatorID string) *updateSession.Request {
	return &updateSession.Request{
		ID:         id,
		VehicleID:  r.VehicleID,
		SpaceID:    r.SpaceID,
		TariffID:   r.TariffID,
		TimeIn:     r.TimeIn.Ptr(),
		TimeOut:    r.TimeOut.Ptr(),
		TotalCost:  r.TotalCost,
		OperatorID: operatorID,
	}
}
