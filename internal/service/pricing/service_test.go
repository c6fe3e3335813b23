package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	tariffRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/tariff"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type mockTariffRepo struct {
	mock.Mock
}

func (m *mockTariffRepo) GetByID(ctx context.Context, id int64) (*domain.Tariff, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*domain.Tariff); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 3, 1, hour, minute, 0, 0, time.UTC)
}

func TestCostForInterval(t *testing.T) {
	price := decimal.RequireFromString("100")

	tests := map[string]struct {
		in, out time.Time
		want    string
	}{
		"one minute is a whole hour": {in: at(10, 0), out: at(10, 1), want: "100.00"},
		"exact hour":                 {in: at(10, 0), out: at(11, 0), want: "100.00"},
		"hour and a second": {
			in:   at(10, 0),
			out:  at(11, 0).Add(time.Second),
			want: "200.00",
		},
		"two and a half hours": {in: at(10, 0), out: at(12, 30), want: "300.00"},
		"overnight": {
			in:   at(22, 0),
			out:  at(22, 0).Add(25 * time.Hour),
			want: "2500.00",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := CostForInterval(tt.in, tt.out, price)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestCostForInterval_FractionalPrice(t *testing.T) {
	got := CostForInterval(at(10, 0), at(12, 15), decimal.RequireFromString("33.35"))
	assert.Equal(t, "100.05", got.StringFixed(2))
}

func TestComputeCost(t *testing.T) {
	repo := new(mockTariffRepo)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Tariff{ID: 1, PricePerHour: decimal.NewFromInt(100), PricePerDay: decimal.NewFromInt(1)}, nil)

	calc := NewCalculator(repo, logger.NewNop())

	cost, err := calc.ComputeCost(context.Background(), at(10, 0), at(10, 1), 1)
	require.NoError(t, err)
	assert.Equal(t, "100.00", cost.StringFixed(2))
	repo.AssertExpectations(t)
}

func TestComputeCost_IgnoresOffset(t *testing.T) {
	repo := new(mockTariffRepo)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Tariff{ID: 1, PricePerHour: decimal.NewFromInt(50)}, nil)

	calc := NewCalculator(repo, logger.NewNop())

	// одинаковое настенное время в разных зонах даёт час, а не три
	in := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("MSK", 3*3600))
	out := time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)

	cost, err := calc.ComputeCost(context.Background(), in, out, 1)
	require.NoError(t, err)
	assert.Equal(t, "50.00", cost.StringFixed(2))
}

func TestComputeCost_InvalidIntervalCheckedFirst(t *testing.T) {
	tests := map[string]struct {
		in, out time.Time
	}{
		"equal":    {in: at(10, 0), out: at(10, 0)},
		"reversed": {in: at(11, 0), out: at(10, 0)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := new(mockTariffRepo)
			calc := NewCalculator(repo, logger.NewNop())

			_, err := calc.ComputeCost(context.Background(), tt.in, tt.out, 99)
			assert.ErrorIs(t, err, ErrInvalidInterval)
			repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		})
	}
}

func TestComputeCost_TariffNotFound(t *testing.T) {
	repo := new(mockTariffRepo)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, tariffRepo.ErrTariffNotFound)

	calc := NewCalculator(repo, logger.NewNop())

	_, err := calc.ComputeCost(context.Background(), at(10, 0), at(11, 0), 99)
	assert.ErrorIs(t, err, ErrTariffNotFound)
}

func TestComputeCost_StorageError(t *testing.T) {
	repo := new(mockTariffRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(nil, errors.New("connection reset"))

	calc := NewCalculator(repo, logger.NewNop())

	_, err := calc.ComputeCost(context.Background(), at(10, 0), at(11, 0), 1)
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrTariffNotFound)
}
