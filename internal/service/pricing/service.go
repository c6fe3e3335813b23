package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	tariffRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/tariff"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

var nanosPerHour = decimal.NewFromInt(int64(time.Hour))

// Calculator считает стоимость парковки по почасовому тарифу
type Calculator struct {
	tariffRepo TariffRepository
	logger     Logger
}

func NewCalculator(tariffRepo TariffRepository, logger Logger) *Calculator {
	return &Calculator{
		tariffRepo: tariffRepo,
		logger:     logger,
	}
}

// ComputeCost возвращает стоимость интервала [timeIn, timeOut] по тарифу tariffID
// Интервал проверяется до обращения к хранилищу
func (c *Calculator) ComputeCost(ctx context.Context, timeIn, timeOut time.Time, tariffID int64) (decimal.Decimal, error) {
	timeIn, timeOut = types.ToNaive(timeIn), types.ToNaive(timeOut)

	if !timeOut.After(timeIn) {
		c.logger.Warn("ComputeCost: invalid interval time_in=%s time_out=%s",
			timeIn.Format(types.NaiveLayout), timeOut.Format(types.NaiveLayout))
		return decimal.Zero, ErrInvalidInterval
	}

	tariff, err := c.tariffRepo.GetByID(ctx, tariffID)
	if err != nil {
		if errors.Is(err, tariffRepo.ErrTariffNotFound) {
			c.logger.Warn("ComputeCost: tariff id=%d not found", tariffID)
			return decimal.Zero, ErrTariffNotFound
		}
		c.logger.Error("ComputeCost: failed to get tariff id=%d: %v", tariffID, err)
		return decimal.Zero, fmt.Errorf("%w: ComputeCost - get tariff: %v", ErrInternal, err)
	}

	cost := CostForInterval(timeIn, timeOut, tariff.PricePerHour)
	c.logger.Info("ComputeCost: tariff id=%d, duration=%s, cost=%s", tariffID, timeOut.Sub(timeIn), cost.StringFixed(domain.MoneyPlaces))

	return cost, nil
}

// CostForInterval ceil(часы) * цена за час, округление до копеек
// Начатый час оплачивается полностью
func CostForInterval(timeIn, timeOut time.Time, pricePerHour decimal.Decimal) decimal.Decimal {
	elapsed := decimal.NewFromInt(timeOut.Sub(timeIn).Nanoseconds())
	hours := elapsed.Div(nanosPerHour).Ceil()
	return hours.Mul(pricePerHour).Round(domain.MoneyPlaces)
}
