package reports

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ReportRepository агрегирующие запросы
type ReportRepository interface {
	RevenueStats(ctx context.Context, period domain.ReportPeriod) (domain.RevenueStats, error)
	SessionsCount(ctx context.Context, period domain.ReportPeriod) (int64, error)
}

// TimeProvider текущее время (наивное UTC)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
