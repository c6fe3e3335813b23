package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/reports/models"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return types.NaiveNow()
}

// Service отчёты по выручке и сессиям за произвольный период
type Service struct {
	reportRepo   ReportRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewService(reportRepo ReportRepository, logger Logger) *Service {
	return &Service{
		reportRepo:   reportRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Revenue сумма стоимости закрытых сессий, пересекающих период
func (s *Service) Revenue(ctx context.Context, req models.PeriodRequest) (*models.RevenueReport, error) {
	period, err := normalize(req)
	if err != nil {
		return nil, err
	}

	stats, err := s.reportRepo.RevenueStats(ctx, period)
	if err != nil {
		s.logger.Error("Revenue: repository error: %v", err)
		return nil, fmt.Errorf("%w: Revenue - repository error: %v", ErrInternal, err)
	}

	start, end := s.bounds(req)
	s.logger.Info("Revenue: %s over %d sessions", stats.Total.StringFixed(domain.MoneyPlaces), stats.Count)
	return &models.RevenueReport{TotalRevenue: stats.Total, PeriodStart: start, PeriodEnd: end}, nil
}

// SessionsCount число сессий, начавшихся в периоде
func (s *Service) SessionsCount(ctx context.Context, req models.PeriodRequest) (*models.SessionsReport, error) {
	period, err := normalize(req)
	if err != nil {
		return nil, err
	}

	count, err := s.reportRepo.SessionsCount(ctx, period)
	if err != nil {
		s.logger.Error("SessionsCount: repository error: %v", err)
		return nil, fmt.Errorf("%w: SessionsCount - repository error: %v", ErrInternal, err)
	}

	start, end := s.bounds(req)
	return &models.SessionsReport{TotalSessions: count, PeriodStart: start, PeriodEnd: end}, nil
}

// AverageCheck выручка / число закрытых сессий, 0 если их нет
func (s *Service) AverageCheck(ctx context.Context, req models.PeriodRequest) (*models.AverageCheckReport, error) {
	period, err := normalize(req)
	if err != nil {
		return nil, err
	}

	stats, err := s.reportRepo.RevenueStats(ctx, period)
	if err != nil {
		s.logger.Error("AverageCheck: repository error: %v", err)
		return nil, fmt.Errorf("%w: AverageCheck - repository error: %v", ErrInternal, err)
	}

	start, end := s.bounds(req)
	return &models.AverageCheckReport{
		AverageCheck: domain.AverageCheck(stats.Total, stats.Count),
		PeriodStart:  start,
		PeriodEnd:    end,
	}, nil
}

// bounds границы для ответа: без начала - нулевое время, без конца - сейчас
func (s *Service) bounds(req models.PeriodRequest) (time.Time, time.Time) {
	start := time.Time{}
	if req.Start != nil {
		start = types.ToNaive(*req.Start)
	}
	end := s.timeProvider.Now()
	if req.End != nil {
		end = types.ToNaive(*req.End)
	}
	return start, end
}

func normalize(req models.PeriodRequest) (domain.ReportPeriod, error) {
	period := domain.ReportPeriod{
		Start: types.ToNaivePtr(req.Start),
		End:   types.ToNaivePtr(req.End),
	}
	if period.Start != nil && period.End != nil && period.Start.After(*period.End) {
		return domain.ReportPeriod{}, ErrInvalidPeriod
	}
	return period, nil
}
