package vehicles

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/vehicles/models"
)

type CreateVehicleRequest struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
	Color        string `json:"color"`
	TypeID       int64  `json:"type_id"`
	ClientID     int64  `json:"client_id"`
}

type UpdateVehicleRequest struct {
	Brand        *string `json:"brand"`
	Model        *string `json:"model"`
	LicensePlate *string `json:"license_plate"`
	Color        *string `json:"color"`
	TypeID       *int64  `json:"type_id"`
	ClientID     *int64  `json:"client_id"`
}

type VehicleResponse struct {
	ID           int64  `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
	Color        string `json:"color"`
	TypeID       int64  `json:"type_id"`
	ClientID     int64  `json:"client_id"`
}

func (r *CreateVehicleRequest) toService() *models.CreateVehicleRequest {
	return &models.CreateVehicleRequest{
		Brand:        r.Brand,
		Model:        r.Model,
		LicensePlate: r.LicensePlate,
		Color:        r.Color,
		TypeID:       r.TypeID,
		ClientID:     r.ClientID,
	}
}

func (r *UpdateVehicleRequest) toService() *models.UpdateVehicleRequest {
	return &models.UpdateVehicleRequest{
		Brand:        r.Brand,
		Model:        r.Model,
		LicensePlate: r.LicensePlate,
		Color:        r.Color,
		TypeID:       r.TypeID,
		ClientID:     r.ClientID,
	}
}

func fromDomain(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		Brand:        v.Brand,
		Model:        v.Model,
		LicensePlate: v.LicensePlate,
		Color:        v.Color,
		TypeID:       v.TypeID,
		ClientID:     v.ClientID,
	}
}
