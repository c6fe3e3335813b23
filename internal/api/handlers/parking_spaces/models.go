package parking_spaces

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/parking_spaces/models"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

type CreateSpaceRequest struct {
	Number string `json:"number"`
	TypeID int64  `json:"type_id"`
}

type UpdateSpaceRequest struct {
	Number *string `json:"number"`
	TypeID *int64  `json:"type_id"`
}

type SpaceResponse struct {
	ID        int64           `json:"id"`
	Number    string          `json:"number"`
	TypeID    int64           `json:"type_id"`
	CreatedAt types.NaiveTime `json:"created_at"`
}

func fromDomain(s *domain.ParkingSpace) SpaceResponse {
	return SpaceResponse{
		ID:        s.ID,
		Number:    s.Number,
		TypeID:    s.TypeID,
		CreatedAt: types.NewNaiveTime(s.CreatedAt),
	}
}

func (r *CreateSpaceRequest) toService() *models.CreateSpaceRequest {
	return &models.CreateSpaceRequest{Number: r.Number, TypeID: r.TypeID}
}

func (r *UpdateSpaceRequest) toService() *models.UpdateSpaceRequest {
	return &models.UpdateSpaceRequest{Number: r.Number, TypeID: r.TypeID}
}
