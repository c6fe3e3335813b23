package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	clientRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/client"
	"github.com/m04kA/SMC-ParkingService/internal/service/clients/models"
)

// Service сервис клиентов парковки
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*domain.Client, error) {
	client := req.ToDomain()
	if err := validate(client); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created client id=%d", created.ID)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return client, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return clients, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateClientRequest) error {
	client, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	req.ApplyTo(client)
	if err := validate(client); err != nil {
		s.logger.Warn("Update: validation failed for client id=%d: %v", id, err)
		return err
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return ErrClientNotFound
		}
		s.logger.Error("Update: repository error for client id=%d: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: client id=%d updated", id)
	return nil
}

func validate(c *domain.Client) error {
	switch {
	case strings.TrimSpace(c.Name) == "" || utf8.RuneCountInString(c.Name) > domain.MaxNameLength:
		return fmt.Errorf("%w: name is required (max %d)", ErrInvalidInput, domain.MaxNameLength)
	case strings.TrimSpace(c.Surname) == "" || utf8.RuneCountInString(c.Surname) > domain.MaxNameLength:
		return fmt.Errorf("%w: surname is required (max %d)", ErrInvalidInput, domain.MaxNameLength)
	case strings.TrimSpace(c.Phone) == "" || utf8.RuneCountInString(c.Phone) > domain.MaxPhoneLength:
		return fmt.Errorf("%w: phone is required (max %d)", ErrInvalidInput, domain.MaxPhoneLength)
	}
	return nil
}
