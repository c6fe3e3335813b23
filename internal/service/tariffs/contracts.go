package tariffs

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// TariffRepository интерфейс репозитория тарифов
type TariffRepository interface {
	Create(ctx context.Context, tariff *domain.Tariff) (*domain.Tariff, error)
	GetByID(ctx context.Context, id int64) (*domain.Tariff, error)
	List(ctx context.Context) ([]*domain.Tariff, error)
	Update(ctx context.Context, tariff *domain.Tariff) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
