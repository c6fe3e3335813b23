package get_parking_session

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type SessionService interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
