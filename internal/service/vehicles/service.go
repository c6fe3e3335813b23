package vehicles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-ParkingService/internal/service/vehicles/models"
)

// Service сервис автомобилей клиентов
type Service struct {
	vehicleRepo VehicleRepository
	logger      Logger
}

func NewService(vehicleRepo VehicleRepository, logger Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (s *Service) Create(ctx context.Context, req *models.CreateVehicleRequest) (*domain.Vehicle, error) {
	vehicle := req.ToDomain()
	if err := validate(vehicle); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		return nil, s.mapRepoError("Create", err)
	}

	s.logger.Info("Create: created vehicle id=%d, plate=%s, client_id=%d", created.ID, created.LicensePlate, created.ClientID)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", err)
	}
	return vehicle, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, s.mapRepoError("List", err)
	}
	return vehicles, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateVehicleRequest) error {
	vehicle, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	req.ApplyTo(vehicle)
	if err := validate(vehicle); err != nil {
		s.logger.Warn("Update: validation failed for vehicle id=%d: %v", id, err)
		return err
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return s.mapRepoError("Update", err)
	}

	s.logger.Info("Update: vehicle id=%d updated", id)
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", err)
	}

	s.logger.Info("Delete: vehicle id=%d deleted", id)
	return nil
}

func (s *Service) mapRepoError(op string, err error) error {
	switch {
	case errors.Is(err, vehicleRepo.ErrVehicleNotFound):
		s.logger.Warn("%s: vehicle not found", op)
		return ErrVehicleNotFound
	case errors.Is(err, vehicleRepo.ErrPlateTaken):
		s.logger.Warn("%s: license plate already exists", op)
		return ErrPlateTaken
	case errors.Is(err, vehicleRepo.ErrReferenceNotFound):
		s.logger.Warn("%s: client or vehicle type not found", op)
		return ErrReferenceNotFound
	case errors.Is(err, vehicleRepo.ErrVehicleInUse):
		s.logger.Warn("%s: vehicle is used by sessions", op)
		return ErrVehicleInUse
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validate(v *domain.Vehicle) error {
	switch {
	case strings.TrimSpace(v.LicensePlate) == "" || utf8.RuneCountInString(v.LicensePlate) > domain.MaxLicensePlateLength:
		return fmt.Errorf("%w: license_plate is required (max %d)", ErrInvalidInput, domain.MaxLicensePlateLength)
	case strings.TrimSpace(v.Brand) == "" || utf8.RuneCountInString(v.Brand) > domain.MaxBrandLength:
		return fmt.Errorf("%w: brand is required (max %d)", ErrInvalidInput, domain.MaxBrandLength)
	case strings.TrimSpace(v.Model) == "" || utf8.RuneCountInString(v.Model) > domain.MaxBrandLength:
		return fmt.Errorf("%w: model is required (max %d)", ErrInvalidInput, domain.MaxBrandLength)
	case strings.TrimSpace(v.Color) == "" || utf8.RuneCountInString(v.Color) > domain.MaxColorLength:
		return fmt.Errorf("%w: color is required (max %d)", ErrInvalidInput, domain.MaxColorLength)
	case v.TypeID <= 0:
		return fmt.Errorf("%w: type_id must be positive", ErrInvalidInput)
	case v.ClientID <= 0:
		return fmt.Errorf("%w: client_id must be positive", ErrInvalidInput)
	}
	return nil
}
