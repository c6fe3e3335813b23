package tariffs

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	tariffRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/tariff"
	"github.com/m04kA/SMC-ParkingService/internal/service/tariffs/models"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, t *domain.Tariff) (*domain.Tariff, error) {
	args := m.Called(ctx, t)
	if v := args.Get(0); v != nil {
		return v.(*domain.Tariff), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Tariff, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Tariff), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]*domain.Tariff, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Tariff), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, t *domain.Tariff) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestCreate_RoundsPrices(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(t *domain.Tariff) bool {
		return t.PricePerHour.Equal(decimal.RequireFromString("33.35"))
	})).Return(&domain.Tariff{ID: 1, Name: "Base", PricePerHour: decimal.RequireFromString("33.35")}, nil)

	svc := NewService(repo, logger.NewNop())
	created, err := svc.Create(context.Background(), &models.CreateTariffRequest{
		Name:         "Base",
		PricePerHour: decimal.RequireFromString("33.349"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	repo.AssertExpectations(t)
}

func TestCreate_NegativePrice(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, logger.NewNop())

	_, err := svc.Create(context.Background(), &models.CreateTariffRequest{
		Name:         "Bad",
		PricePerHour: decimal.NewFromInt(-1),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_KeepsAbsentFields(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Tariff{
		ID:           3,
		Name:         "Night",
		PricePerHour: decimal.NewFromInt(50),
		PricePerDay:  decimal.NewFromInt(500),
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(t *domain.Tariff) bool {
		return t.Name == "Night" &&
			t.PricePerHour.Equal(decimal.NewFromInt(60)) &&
			t.PricePerDay.Equal(decimal.NewFromInt(500))
	})).Return(nil)

	svc := NewService(repo, logger.NewNop())
	err := svc.Update(context.Background(), 3, &models.UpdateTariffRequest{
		PricePerHour: ptr.Ptr(decimal.NewFromInt(60)),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDelete_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{name: "not found", repoErr: tariffRepo.ErrTariffNotFound, want: ErrTariffNotFound},
		{name: "in use", repoErr: tariffRepo.ErrTariffInUse, want: ErrTariffInUse},
		{name: "storage", repoErr: errors.New("connection reset"), want: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepo)
			repo.On("Delete", mock.Anything, int64(7)).Return(tt.repoErr)

			err := NewService(repo, logger.NewNop()).Delete(context.Background(), 7)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
