package tariffs

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/tariffs/models"
)

type TariffService interface {
	Create(ctx context.Context, req *models.CreateTariffRequest) (*domain.Tariff, error)
	GetByID(ctx context.Context, id int64) (*domain.Tariff, error)
	List(ctx context.Context) ([]*domain.Tariff, error)
	Update(ctx context.Context, id int64, req *models.UpdateTariffRequest) error
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
