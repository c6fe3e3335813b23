package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parking_session"
	paymentRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-ParkingService/internal/service/payments/models"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Service сервис оплат парковочных сессий
type Service struct {
	paymentRepo PaymentRepository
	sessionRepo SessionRepository
	txManager   TransactionManager
	logger      Logger
}

func NewService(
	paymentRepo PaymentRepository,
	sessionRepo SessionRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create регистрирует платёж; без суммы берётся total_cost сессии
func (s *Service) Create(ctx context.Context, req *models.CreatePaymentRequest) (*domain.Payment, error) {
	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Payment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		session, err := s.sessionRepo.GetByID(txCtx, req.SessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: Create - get session: %v", ErrInternal, err)
		}

		payment := &domain.Payment{
			SessionID: req.SessionID,
			MethodID:  req.MethodID,
			Time:      types.ToNaive(*req.Time),
		}
		switch {
		case req.Amount != nil:
			payment.Amount = req.Amount.Round(domain.MoneyPlaces)
		case session.TotalCost != nil:
			payment.Amount = *session.TotalCost
		default:
			return ErrAmountUnavailable
		}

		created, err = s.paymentRepo.Create(txCtx, payment)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrReferenceNotFound) {
				return ErrReferenceNotFound
			}
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Create: %v", err)
		} else {
			s.logger.Warn("Create: rejected for session id=%d: %v", req.SessionID, err)
		}
		return nil, err
	}

	s.logger.Info("Create: payment id=%d, session_id=%d, amount=%s", created.ID, created.SessionID, created.Amount)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("GetByID: payment id=%d not found", id)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetByID: repository error for payment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return payment, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Payment, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return payments, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *models.UpdatePaymentRequest) error {
	payment, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if req.SessionID != nil {
		payment.SessionID = *req.SessionID
	}
	if req.Amount != nil {
		payment.Amount = req.Amount.Round(domain.MoneyPlaces)
	}
	if req.MethodID != nil {
		payment.MethodID = *req.MethodID
	}
	if req.Time != nil {
		payment.Time = types.ToNaive(*req.Time)
	}

	if payment.Amount.IsNegative() {
		s.logger.Warn("Update: negative amount for payment id=%d", id)
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		switch {
		case errors.Is(err, paymentRepo.ErrPaymentNotFound):
			return ErrPaymentNotFound
		case errors.Is(err, paymentRepo.ErrReferenceNotFound):
			s.logger.Warn("Update: session or method not found for payment id=%d", id)
			return ErrReferenceNotFound
		}
		s.logger.Error("Update: repository error for payment id=%d: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: payment id=%d updated", id)
	return nil
}

func validateCreate(req *models.CreatePaymentRequest) error {
	switch {
	case req.SessionID <= 0:
		return fmt.Errorf("%w: session_id must be positive", ErrInvalidInput)
	case req.MethodID <= 0:
		return fmt.Errorf("%w: method_id must be positive", ErrInvalidInput)
	case req.Time == nil:
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	case req.Amount != nil && req.Amount.IsNegative():
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	return nil
}
