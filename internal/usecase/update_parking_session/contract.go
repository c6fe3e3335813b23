package update_parking_session

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingSession, error)
	Update(ctx context.Context, session *domain.ParkingSession) error
}

// CostCalculator расчёт стоимости по тарифу
type CostCalculator interface {
	ComputeCost(ctx context.Context, timeIn, timeOut time.Time, tariffID int64) (decimal.Decimal, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
