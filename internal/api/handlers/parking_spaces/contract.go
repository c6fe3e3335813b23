package parking_spaces

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/parking_spaces/models"
)

type SpaceService interface {
	Create(ctx context.Context, req *models.CreateSpaceRequest) (*domain.ParkingSpace, error)
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpace, error)
	List(ctx context.Context) ([]*domain.ParkingSpace, error)
	Update(ctx context.Context, id int64, req *models.UpdateSpaceRequest) error
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
