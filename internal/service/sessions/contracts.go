package sessions

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingSession, error)
	List(ctx context.Context, filter domain.SessionFilter) ([]*domain.ParkingSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
