package create_parking_session

import (
	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	createSession "github.com/m04kA/SMC-ParkingService/internal/usecase/create_parking_session"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// CreateSessionRequest HTTP request model
type CreateSessionRequest struct {
	VehicleID int64            `json:"vehicle_id"`
	SpaceID   int64            `json:"space_id"`
	TariffID  int64            `json:"tariff_id"`
	TimeIn    *types.NaiveTime `json:"time_in"`
	TimeOut   *types.NaiveTime `json:"time_out,omitempty"`
}

func (r *CreateSessionRequest) ToUseCaseRequest() *createSession.Request {
	return &createSession.Request{
		VehicleID: r.VehicleID,
		SpaceID:   r.SpaceID,
		TariffID:  r.TariffID,
		TimeIn:    r.TimeIn.Ptr(),
		TimeOut:   r.TimeOut.Ptr(),
	}
}

func FromUseCaseResponse(resp *createSession.Response) handlers.SessionResponse {
	return handlers.NewSessionResponse(&domain.ParkingSession{
		ID:        resp.ID,
		VehicleID: resp.VehicleID,
		SpaceID:   resp.SpaceID,
		TariffID:  resp.TariffID,
		TimeIn:    resp.TimeIn,
		TimeOut:   resp.TimeOut,
		TotalCost: resp.TotalCost,
		CreatedAt: resp.CreatedAt,
	})
}
