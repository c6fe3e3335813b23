package get_dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// ReportRepository агрегирующие запросы для дашборда
type ReportRepository interface {
	RevenueStats(ctx context.Context, period domain.ReportPeriod) (domain.RevenueStats, error)
	SessionsCount(ctx context.Context, period domain.ReportPeriod) (int64, error)
	ActiveSessionsCount(ctx context.Context) (int64, error)
	TotalSpaces(ctx context.Context) (int64, error)
	OccupiedSpaces(ctx context.Context) (int64, error)
	ClosedSessionsOverlapping(ctx context.Context, from, to time.Time) ([]domain.ParkingSession, error)
	SessionsByPeriod(ctx context.Context, granularity domain.Granularity, since time.Time) ([]domain.PeriodCount, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider текущее время UTC без часового пояса
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return types.NaiveNow()
}
