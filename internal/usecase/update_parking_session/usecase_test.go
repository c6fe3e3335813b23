package update_parking_session

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
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parking_session"
	"github.com/m04kA/SMC-ParkingService/internal/service/pricing"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// memoryRepo хранит одну сессию и запоминает последнее сохранённое состояние
type memoryRepo struct {
	session   *domain.ParkingSession
	saved     *domain.ParkingSession
	getErr    error
	updateErr error
}

func (m *memoryRepo) GetByID(_ context.Context, id int64) (*domain.ParkingSession, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.session == nil || m.session.ID != id {
		return nil, sessionRepo.ErrSessionNotFound
	}
	copied := *m.session
	return &copied, nil
}

func (m *memoryRepo) Update(_ context.Context, s *domain.ParkingSession) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	copied := *s
	m.saved = &copied
	return nil
}

type mockCalculator struct {
	mock.Mock
}

func (m *mockCalculator) ComputeCost(ctx context.Context, timeIn, timeOut time.Time, tariffID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, timeIn, timeOut, tariffID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type fakeTxManager struct {
	rolledBack bool
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	f.rolledBack = err != nil
	return err
}

var (
	timeIn  = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	timeOut = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
)

func openSession() *domain.ParkingSession {
	return &domain.ParkingSession{ID: 1, VehicleID: 1, SpaceID: 2, TariffID: 3, TimeIn: timeIn}
}

func TestExecute_CheckOutRecomputesCost(t *testing.T) {
	repo := &memoryRepo{session: openSession()}
	calc := new(mockCalculator)
	calc.On("ComputeCost", mock.Anything, timeIn, timeOut, int64(3)).Return(decimal.RequireFromString("300.00"), nil)

	uc := NewUseCase(repo, calc, &fakeTxManager{}, logger.NewNop())
	err := uc.Execute(context.Background(), &Request{ID: 1, TimeOut: &timeOut})

	require.NoError(t, err)
	require.NotNil(t, repo.saved.TimeOut)
	assert.Equal(t, timeOut, *repo.saved.TimeOut)
	assert.Equal(t, "300.00", repo.saved.TotalCost.StringFixed(2))
}

func TestExecute_RecomputeUsesUpdatedFields(t *testing.T) {
	repo := &memoryRepo{session: openSession()}
	calc := new(mockCalculator)
	newIn := timeIn.Add(-time.Hour)
	calc.On("ComputeCost", mock.Anything, newIn, timeOut, int64(9)).Return(decimal.NewFromInt(700), nil)

	uc := NewUseCase(repo, calc, &fakeTxManager{}, logger.NewNop())
	err := uc.Execute(context.Background(), &Request{ID: 1, TariffID: ptr.Ptr(int64(9)), TimeIn: &newIn, TimeOut: &timeOut})

	require.NoError(t, err)
	assert.Equal(t, int64(9), repo.saved.TariffID)
	assert.True(t, decimal.NewFromInt(700).Equal(*repo.saved.TotalCost))
	calc.AssertExpectations(t)
}

func TestExecute_SwallowsCostErrors(t *testing.T) {
	for name, calcErr := range map[string]error{
		"invalid interval": pricing.ErrInvalidInterval,
		"tariff missing":   pricing.ErrTariffNotFound,
	} {
		t.Run(name, func(t *testing.T) {
			previous := decimal.NewFromInt(50)
			session := openSession()
			session.TotalCost = &previous

			repo := &memoryRepo{session: session}
			calc := new(mockCalculator)
			calc.On("ComputeCost", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(decimal.Zero, calcErr)

			tx := &fakeTxManager{}
			uc := NewUseCase(repo, calc, tx, logger.NewNop())
			err := uc.Execute(context.Background(), &Request{ID: 1, TimeOut: &timeOut})

			require.NoError(t, err)
			assert.False(t, tx.rolledBack)
			assert.Equal(t, timeOut, *repo.saved.TimeOut)
			assert.True(t, previous.Equal(*repo.saved.TotalCost))
		})
	}
}

func TestExecute_StorageErrorDuringRecomputePropagates(t *testing.T) {
	repo := &memoryRepo{session: openSession()}
	calc := new(mockCalculator)
	calc.On("ComputeCost", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(decimal.Zero, pricing.ErrInternal)

	tx := &fakeTxManager{}
	uc := NewUseCase(repo, calc, tx, logger.NewNop())
	err := uc.Execute(context.Background(), &Request{ID: 1, TimeOut: &timeOut})

	assert.ErrorIs(t, err, ErrInternal)
	assert.True(t, tx.rolledBack)
	assert.Nil(t, repo.saved)
}

func TestExecute_ExplicitCostOverrides(t *testing.T) {
	repo := &memoryRepo{session: openSession()}
	calc := new(mockCalculator)

	uc := NewUseCase(repo, calc, &fakeTxManager{}, logger.NewNop())
	err := uc.Execute(context.Background(), &Request{
		ID:        1,
		TimeOut:   &timeOut,
		TotalCost: ptr.Ptr(decimal.RequireFromString("123.456")),
	})

	require.NoError(t, err)
	assert.Equal(t, "123.46", repo.saved.TotalCost.StringFixed(2))
	calc.AssertNotCalled(t, "ComputeCost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_CostWithoutCheckOut(t *testing.T) {
	repo := &memoryRepo{session: openSession()}

	uc := NewUseCase(repo, new(mockCalculator), &fakeTxManager{}, logger.NewNop())
	err := uc.Execute(context.Background(), &Request{ID: 1, TotalCost: ptr.Ptr(decimal.NewFromInt(10))})

	require.NoError(t, err)
	assert.Nil(t, repo.saved.TimeOut)
	assert.Equal(t, "10.00", repo.saved.TotalCost.StringFixed(2))
}

func TestExecute_PartialUpdateKeepsAbsentFields(t *testing.T) {
	repo := &memoryRepo{session: openSession()}

	uc := NewUseCase(repo, new(mockCalculator), &fakeTxManager{}, logger.NewNop())
	err := uc.Execute(context.Background(), &Request{ID: 1, SpaceID: ptr.Ptr(int64(8))})

	require.NoError(t, err)
	assert.Equal(t, int64(8), repo.saved.SpaceID)
	assert.Equal(t, int64(1), repo.saved.VehicleID)
	assert.Equal(t, int64(3), repo.saved.TariffID)
	assert.Equal(t, timeIn, repo.saved.TimeIn)
	assert.Nil(t, repo.saved.TimeOut)
	assert.Nil(t, repo.saved.TotalCost)
}

func TestExecute_Errors(t *testing.T) {
	tests := map[string]struct {
		repo    *memoryRepo
		req     *Request
		wantErr error
	}{
		"not found": {
			repo:    &memoryRepo{},
			req:     &Request{ID: 42},
			wantErr: ErrSessionNotFound,
		},
		"get storage error": {
			repo:    &memoryRepo{getErr: errors.New("boom")},
			req:     &Request{ID: 1},
			wantErr: ErrInternal,
		},
		"unknown reference on save": {
			repo:    &memoryRepo{session: openSession(), updateErr: sessionRepo.ErrReferenceNotFound},
			req:     &Request{ID: 1, VehicleID: ptr.Ptr(int64(99))},
			wantErr: ErrReferenceNotFound,
		},
		"invalid id": {
			repo:    &memoryRepo{},
			req:     &Request{ID: 0},
			wantErr: ErrInvalidInput,
		},
		"invalid tariff": {
			repo:    &memoryRepo{session: openSession()},
			req:     &Request{ID: 1, TariffID: ptr.Ptr(int64(-1))},
			wantErr: ErrInvalidInput,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uc := NewUseCase(tt.repo, new(mockCalculator), &fakeTxManager{}, logger.NewNop())
			err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
