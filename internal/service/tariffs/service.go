package tariffs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	tariffRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/tariff"
	"github.com/m04kA/SMC-ParkingService/internal/service/tariffs/models"
)

// Service сервис тарифов
type Service struct {
	tariffRepo TariffRepository
	logger     Logger
}

func NewService(tariffRepo TariffRepository, logger Logger) *Service {
	return &Service{
		tariffRepo: tariffRepo,
		logger:     logger,
	}
}

func (s *Service) Create(ctx context.Context, req *models.CreateTariffRequest) (*domain.Tariff, error) {
	tariff := req.ToDomain()
	if err := validate(tariff); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.tariffRepo.Create(ctx, tariff)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created tariff id=%d, price_per_hour=%s", created.ID, created.PricePerHour)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Tariff, error) {
	tariff, err := s.tariffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tariffRepo.ErrTariffNotFound) {
			s.logger.Warn("GetByID: tariff id=%d not found", id)
			return nil, ErrTariffNotFound
		}
		s.logger.Error("GetByID: repository error for tariff id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return tariff, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Tariff, error) {
	tariffs, err := s.tariffRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return tariffs, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTariffRequest) error {
	tariff, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	req.ApplyTo(tariff)
	if err := validate(tariff); err != nil {
		s.logger.Warn("Update: validation failed for tariff id=%d: %v", id, err)
		return err
	}

	if err := s.tariffRepo.Update(ctx, tariff); err != nil {
		if errors.Is(err, tariffRepo.ErrTariffNotFound) {
			return ErrTariffNotFound
		}
		s.logger.Error("Update: repository error for tariff id=%d: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: tariff id=%d updated", id)
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.tariffRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, tariffRepo.ErrTariffNotFound):
			s.logger.Warn("Delete: tariff id=%d not found", id)
			return ErrTariffNotFound
		case errors.Is(err, tariffRepo.ErrTariffInUse):
			s.logger.Warn("Delete: tariff id=%d is used by sessions", id)
			return ErrTariffInUse
		}
		s.logger.Error("Delete: repository error for tariff id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: tariff id=%d deleted", id)
	return nil
}

func validate(t *domain.Tariff) error {
	switch {
	case strings.TrimSpace(t.Name) == "" || utf8.RuneCountInString(t.Name) > domain.MaxNameLength:
		return fmt.Errorf("%w: name is required (max %d)", ErrInvalidInput, domain.MaxNameLength)
	case t.PricePerHour.IsNegative():
		return fmt.Errorf("%w: price_per_hour must not be negative", ErrInvalidInput)
	case t.PricePerDay.IsNegative():
		return fmt.Errorf("%w: price_per_day must not be negative", ErrInvalidInput)
	}
	return nil
}
