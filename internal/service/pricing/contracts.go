package pricing

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// TariffRepository поиск тарифа по ID
type TariffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tariff, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
