package parking_spaces

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpaceRepository интерфейс репозитория парковочных мест
type SpaceRepository interface {
	Create(ctx context.Context, space *domain.ParkingSpace) (*domain.ParkingSpace, error)
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpace, error)
	List(ctx context.Context) ([]*domain.ParkingSpace, error)
	Update(ctx context.Context, space *domain.ParkingSpace) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
