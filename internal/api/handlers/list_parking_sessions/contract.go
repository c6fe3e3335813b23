package list_parking_sessions

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type SessionService interface {
	List(ctx context.Context, filter domain.SessionFilter) ([]*domain.ParkingSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
