package get_dashboard

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// UseCase сводный отчёт: выручка, число сессий, средний чек, загрузка и ряды по периодам
type UseCase struct {
	reportRepo   ReportRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(reportRepo ReportRepository, logger Logger) *UseCase {
	return &UseCase{
		reportRepo:   reportRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute собирает дашборд для period (day|week|month, иначе day)
// Ошибка любой скалярной метрики - ошибка всего дашборда;
// ряды по периодам при ошибке возвращаются пустыми
func (uc *UseCase) Execute(ctx context.Context, period string) (*domain.Dashboard, error) {
	granularity := domain.ParseGranularity(period)
	// пустой period - обычный запрос без параметра
	if period != "" && string(granularity) != period {
		uc.logger.Warn("GetDashboard: unknown period=%q, falling back to %s", period, granularity)
	}

	now := uc.timeProvider.Now()
	window := domain.ReportPeriod{Start: ptr.Ptr(now.Add(-granularity.Window())), End: ptr.Ptr(now)}

	uc.logger.Info("GetDashboard: period=%s, window=[%s, %s]", granularity,
		window.Start.Format(domain.PeriodStartFormat), window.End.Format(domain.PeriodStartFormat))

	var (
		dashboard domain.Dashboard
		revenue   domain.RevenueStats
		total     int64
		occupied  int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if revenue, err = uc.reportRepo.RevenueStats(gctx, window); err != nil {
			return fmt.Errorf("revenue: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if dashboard.TotalSessions, err = uc.reportRepo.SessionsCount(gctx, window); err != nil {
			return fmt.Errorf("sessions count: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if dashboard.ActiveSessions, err = uc.reportRepo.ActiveSessionsCount(gctx); err != nil {
			return fmt.Errorf("active sessions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if total, err = uc.reportRepo.TotalSpaces(gctx); err != nil {
			return fmt.Errorf("total spaces: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if occupied, err = uc.reportRepo.OccupiedSpaces(gctx); err != nil {
			return fmt.Errorf("occupied spaces: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		dashboard.RevenueByPeriod = uc.revenueSeries(gctx, granularity, now)
		return nil
	})
	g.Go(func() error {
		dashboard.SessionsByPeriod = uc.countSeries(gctx, granularity, now)
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetDashboard: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	dashboard.TotalRevenue = revenue.Total
	dashboard.AverageCheck = domain.AverageCheck(revenue.Total, revenue.Count)
	dashboard.FreeSpaces = total - occupied

	return &dashboard, nil
}

func (uc *UseCase) revenueSeries(ctx context.Context, g domain.Granularity, now time.Time) []domain.PeriodRevenue {
	sessions, err := uc.reportRepo.ClosedSessionsOverlapping(ctx, now.Add(-g.Lookback()), now)
	if err != nil {
		uc.logger.Error("GetDashboard: revenue_by_period degraded to empty: %v", err)
		return []domain.PeriodRevenue{}
	}
	return slices.AppendSeq(make([]domain.PeriodRevenue, 0), revenueByPeriod(g, sessions, now))
}

func (uc *UseCase) countSeries(ctx context.Context, g domain.Granularity, now time.Time) []domain.PeriodCount {
	counts, err := uc.reportRepo.SessionsByPeriod(ctx, g, now.Add(-g.Lookback()))
	if err != nil {
		uc.logger.Error("GetDashboard: sessions_by_period degraded to empty: %v", err)
		return []domain.PeriodCount{}
	}
	return counts
}
