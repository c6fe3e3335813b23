package models

import "github.com/m04kA/SMC-ParkingService/internal/domain"

type CreateVehicleRequest struct {
	Brand        string
	Model        string
	LicensePlate string
	Color        string
	TypeID       int64
	ClientID     int64
}

type UpdateVehicleRequest struct {
	Brand        *string
	Model        *string
	LicensePlate *string
	Color        *string
	TypeID       *int64
	ClientID     *int64
}

func (r *CreateVehicleRequest) ToDomain() *domain.Vehicle {
	return &domain.Vehicle{
		Brand:        r.Brand,
		Model:        r.Model,
		LicensePlate: r.LicensePlate,
		Color:        r.Color,
		TypeID:       r.TypeID,
		ClientID:     r.ClientID,
	}
}

func (r *UpdateVehicleRequest) ApplyTo(v *domain.Vehicle) {
	if r.Brand != nil {
		v.Brand = *r.Brand
	}
	if r.Model != nil {
		v.Model = *r.Model
	}
	if r.LicensePlate != nil {
		v.LicensePlate = *r.LicensePlate
	}
	if r.Color != nil {
		v.Color = *r.Color
	}
	if r.TypeID != nil {
		v.TypeID = *r.TypeID
	}
	if r.ClientID != nil {
		v.ClientID = *r.ClientID
	}
}
