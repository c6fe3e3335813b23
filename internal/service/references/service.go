package references

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var ErrInternal = errors.New("service: internal error")

// ReferenceRepository справочники типов транспорта и способов оплаты
type ReferenceRepository interface {
	ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

type Service struct {
	repo   ReferenceRepository
	logger Logger
}

func NewService(repo ReferenceRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) VehicleTypes(ctx context.Context) ([]domain.VehicleType, error) {
	types, err := s.repo.ListVehicleTypes(ctx)
	if err != nil {
		s.logger.Error("VehicleTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: VehicleTypes - repository error: %v", ErrInternal, err)
	}
	return types, nil
}

func (s *Service) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods, err := s.repo.ListPaymentMethods(ctx)
	if err != nil {
		s.logger.Error("PaymentMethods: repository error: %v", err)
		return nil, fmt.Errorf("%w: PaymentMethods - repository error: %v", ErrInternal, err)
	}
	return methods, nil
}
