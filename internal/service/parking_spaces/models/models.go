package models

import "github.com/m04kA/SMC-ParkingService/internal/domain"

type CreateSpaceRequest struct {
	Number string
	TypeID int64
}

type UpdateSpaceRequest struct {
	Number *string
	TypeID *int64
}

func (r *CreateSpaceRequest) ToDomain() *domain.ParkingSpace {
	return &domain.ParkingSpace{Number: r.Number, TypeID: r.TypeID}
}

func (r *UpdateSpaceRequest) ApplyTo(s *domain.ParkingSpace) {
	if r.Number != nil {
		s.Number = *r.Number
	}
	if r.TypeID != nil {
		s.TypeID = *r.TypeID
	}
}
