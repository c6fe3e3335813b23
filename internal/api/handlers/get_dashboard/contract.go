package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type DashboardUseCase interface {
	Execute(ctx context.Context, period string) (*domain.Dashboard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
