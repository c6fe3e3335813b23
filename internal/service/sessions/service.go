package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parking_session"
)

// Service чтение парковочных сессий
type Service struct {
	sessionRepo SessionRepository
	logger      Logger
}

func NewService(sessionRepo SessionRepository, logger Logger) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.ParkingSession, error) {
	s.logger.Info("GetByID: fetching session id=%d", id)

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("GetByID: session id=%d not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetByID: repository error for session id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return session, nil
}

// List возвращает сессии; filter.Active = true только открытые
func (s *Service) List(ctx context.Context, filter domain.SessionFilter) ([]*domain.ParkingSession, error) {
	sessions, err := s.sessionRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d sessions", len(sessions))
	return sessions, nil
}
