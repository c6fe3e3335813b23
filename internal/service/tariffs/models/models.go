package models

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type CreateTariffRequest struct {
	Name         string
	PricePerHour decimal.Decimal
	PricePerDay  decimal.Decimal
}

type UpdateTariffRequest struct {
	Name         *string
	PricePerHour *decimal.Decimal
	PricePerDay  *decimal.Decimal
}

func (r *CreateTariffRequest) ToDomain() *domain.Tariff {
	return &domain.Tariff{
		Name:         r.Name,
		PricePerHour: r.PricePerHour.Round(domain.MoneyPlaces),
		PricePerDay:  r.PricePerDay.Round(domain.MoneyPlaces),
	}
}

// ApplyTo переносит переданные поля в тариф
func (r *UpdateTariffRequest) ApplyTo(t *domain.Tariff) {
	if r.Name != nil {
		t.Name = *r.Name
	}
	if r.PricePerHour != nil {
		t.PricePerHour = r.PricePerHour.Round(domain.MoneyPlaces)
	}
	if r.PricePerDay != nil {
		t.PricePerDay = r.PricePerDay.Round(domain.MoneyPlaces)
	}
}
