package create_parking_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parking_session"
	"github.com/m04kA/SMC-ParkingService/internal/service/pricing"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// UseCase регистрация въезда (и, опционально, сразу выезда)
type UseCase struct {
	sessionRepo SessionRepository
	calculator  CostCalculator
	txManager   TransactionManager
	logger      Logger
}

func NewUseCase(
	sessionRepo SessionRepository,
	calculator CostCalculator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo: sessionRepo,
		calculator:  calculator,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute создаёт сессию в одной транзакции
// Если передан time_out, стоимость считается до вставки; ошибка расчёта откатывает создание
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateParkingSession: validation failed: %v", err)
		return nil, err
	}

	session := &domain.ParkingSession{
		VehicleID: req.VehicleID,
		SpaceID:   req.SpaceID,
		TariffID:  req.TariffID,
		TimeIn:    types.ToNaive(*req.TimeIn),
		TimeOut:   types.ToNaivePtr(req.TimeOut),
	}

	uc.logger.Info("CreateParkingSession: vehicle=%d, space=%d, tariff=%d, time_in=%s, closed=%t",
		session.VehicleID, session.SpaceID, session.TariffID, session.TimeIn.Format(types.NaiveLayout), session.TimeOut != nil)

	var created *domain.ParkingSession
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if session.TimeOut != nil {
			cost, err := uc.calculator.ComputeCost(txCtx, session.TimeIn, *session.TimeOut, session.TariffID)
			if err != nil {
				return mapCostError(err)
			}
			session.TotalCost = &cost
		}

		var err error
		created, err = uc.sessionRepo.Create(txCtx, session)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrReferenceNotFound) {
				return ErrReferenceNotFound
			}
			return fmt.Errorf("%w: create session: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateParkingSession: %v", err)
		} else {
			uc.logger.Warn("CreateParkingSession: rejected: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateParkingSession: created session id=%d", created.ID)
	return fromDomain(created), nil
}

func mapCostError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrInvalidInterval):
		return ErrInvalidInterval
	case errors.Is(err, pricing.ErrTariffNotFound):
		return ErrTariffNotFound
	default:
		return fmt.Errorf("%w: compute cost: %v", ErrInternal, err)
	}
}
