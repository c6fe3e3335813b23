package parking_spaces

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parking_space"
	"github.com/m04kA/SMC-ParkingService/internal/service/parking_spaces/models"
)

type Service struct {
	spaceRepo SpaceRepository
	logger    Logger
}

func NewService(spaceRepo SpaceRepository, logger Logger) *Service {
	return &Service{
		spaceRepo: spaceRepo,
		logger:    logger,
	}
}

func (s *Service) Create(ctx context.Context, req *models.CreateSpaceRequest) (*domain.ParkingSpace, error) {
	space := req.ToDomain()
	if err := validate(space); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.spaceRepo.Create(ctx, space)
	if err != nil {
		return nil, s.mapRepoError("Create", err)
	}

	s.logger.Info("Create: created parking space id=%d, number=%s", created.ID, created.Number)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.ParkingSpace, error) {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", err)
	}
	return space, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.ParkingSpace, error) {
	spaces, err := s.spaceRepo.List(ctx)
	if err != nil {
		return nil, s.mapRepoError("List", err)
	}
	return spaces, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSpaceRequest) error {
	space, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	req.ApplyTo(space)
	if err := validate(space); err != nil {
		s.logger.Warn("Update: validation failed for parking space id=%d: %v", id, err)
		return err
	}

	if err := s.spaceRepo.Update(ctx, space); err != nil {
		return s.mapRepoError("Update", err)
	}

	s.logger.Info("Update: parking space id=%d updated", id)
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.spaceRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", err)
	}

	s.logger.Info("Delete: parking space id=%d deleted", id)
	return nil
}

func (s *Service) mapRepoError(op string, err error) error {
	switch {
	case errors.Is(err, spaceRepo.ErrSpaceNotFound):
		s.logger.Warn("%s: parking space not found", op)
		return ErrSpaceNotFound
	case errors.Is(err, spaceRepo.ErrNumberTaken):
		s.logger.Warn("%s: parking space number already exists", op)
		return ErrNumberTaken
	case errors.Is(err, spaceRepo.ErrUnknownType):
		s.logger.Warn("%s: vehicle type not found", op)
		return ErrUnknownType
	case errors.Is(err, spaceRepo.ErrSpaceInUse):
		s.logger.Warn("%s: parking space is used by sessions", op)
		return ErrSpaceInUse
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validate(space *domain.ParkingSpace) error {
	if strings.TrimSpace(space.Number) == "" || utf8.RuneCountInString(space.Number) > domain.MaxSpaceNumberLength {
		return fmt.Errorf("%w: number is required (max %d)", ErrInvalidInput, domain.MaxSpaceNumberLength)
	}
	if space.TypeID <= 0 {
		return fmt.Errorf("%w: type_id must be positive", ErrInvalidInput)
	}
	return nil
}
