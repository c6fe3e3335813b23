package reports

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/reports/models"
)

type ReportService interface {
	Revenue(ctx context.Context, req models.PeriodRequest) (*models.RevenueReport, error)
	SessionsCount(ctx context.Context, req models.PeriodRequest) (*models.SessionsReport, error)
	AverageCheck(ctx context.Context, req models.PeriodRequest) (*models.AverageCheckReport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
