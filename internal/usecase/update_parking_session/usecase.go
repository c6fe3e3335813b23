package update_parking_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parking_session"
	"github.com/m04kA/SMC-ParkingService/internal/service/pricing"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// UseCase корректировка сессии, в том числе регистрация выезда
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

// Execute применяет переданные поля в одной транзакции
//
// Порядок: vehicle/space/tariff/time_in, затем time_out с пересчётом стоимости
// (если total_cost не передан), затем явный total_cost.
// Ошибки интервала и отсутствия тарифа при пересчёте не прерывают обновление:
// стоимость остаётся прежней.
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateParkingSession: validation failed: %v", err)
		return err
	}

	operator := req.OperatorID
	if operator == "" {
		operator = "anonymous"
	}
	uc.logger.Info("UpdateParkingSession: session id=%d, operator=%s", req.ID, operator)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		session, err := uc.sessionRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: get session: %v", ErrInternal, err)
		}

		req.applyFields(session)

		if req.TimeOut != nil {
			session.TimeOut = types.ToNaivePtr(req.TimeOut)
			if req.TotalCost == nil {
				if err := uc.recompute(txCtx, session); err != nil {
					return err
				}
			}
		}

		if req.TotalCost != nil {
			cost := req.TotalCost.Round(domain.MoneyPlaces)
			session.TotalCost = &cost
		}

		if err := uc.sessionRepo.Update(txCtx, session); err != nil {
			switch {
			case errors.Is(err, sessionRepo.ErrSessionNotFound):
				return ErrSessionNotFound
			case errors.Is(err, sessionRepo.ErrReferenceNotFound):
				return ErrReferenceNotFound
			default:
				return fmt.Errorf("%w: update session: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("UpdateParkingSession: session id=%d: %v", req.ID, err)
		} else {
			uc.logger.Warn("UpdateParkingSession: session id=%d rejected: %v", req.ID, err)
		}
		return err
	}

	uc.logger.Info("UpdateParkingSession: session id=%d updated by %s", req.ID, operator)
	return nil
}

// recompute пересчитывает стоимость; неудачный расчёт оставляет прежнюю стоимость
func (uc *UseCase) recompute(ctx context.Context, session *domain.ParkingSession) error {
	cost, err := uc.calculator.ComputeCost(ctx, session.TimeIn, *session.TimeOut, session.TariffID)
	switch {
	case err == nil:
		session.TotalCost = &cost
		return nil
	case errors.Is(err, pricing.ErrInvalidInterval), errors.Is(err, pricing.ErrTariffNotFound):
		uc.logger.Warn("UpdateParkingSession: session id=%d cost not recomputed: %v", session.ID, err)
		return nil
	default:
		return fmt.Errorf("%w: compute cost: %v", ErrInternal, err)
	}
}
