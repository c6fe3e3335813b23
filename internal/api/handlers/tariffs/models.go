package tariffs

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/tariffs/models"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// CreateTariffRequest цены принимаются числом или строкой
type CreateTariffRequest struct {
	Name         string          `json:"name"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	PricePerDay  decimal.Decimal `json:"price_per_day"`
}

type UpdateTariffRequest struct {
	Name         *string          `json:"name"`
	PricePerHour *decimal.Decimal `json:"price_per_hour"`
	PricePerDay  *decimal.Decimal `json:"price_per_day"`
}

type TariffResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	PricePerHour json.Number     `json:"price_per_hour"`
	PricePerDay  json.Number     `json:"price_per_day"`
	CreatedAt    types.NaiveTime `json:"created_at"`
}

func (r *CreateTariffRequest) toService() *models.CreateTariffRequest {
	return &models.CreateTariffRequest{
		Name:         r.Name,
		PricePerHour: r.PricePerHour,
		PricePerDay:  r.PricePerDay,
	}
}

func (r *UpdateTariffRequest) toService() *models.UpdateTariffRequest {
	return &models.UpdateTariffRequest{
		Name:         r.Name,
		PricePerHour: r.PricePerHour,
		PricePerDay:  r.PricePerDay,
	}
}

func fromDomain(t *domain.Tariff) TariffResponse {
	return TariffResponse{
		ID:           t.ID,
		Name:         t.Name,
		PricePerHour: handlers.Money(t.PricePerHour),
		PricePerDay:  handlers.Money(t.PricePerDay),
		CreatedAt:    types.NewNaiveTime(t.CreatedAt),
	}
}
