package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parking_session"
	paymentRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-ParkingService/internal/service/payments/models"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeSessions map[int64]*domain.ParkingSession

func (f fakeSessions) GetByID(_ context.Context, id int64) (*domain.ParkingSession, error) {
	s, ok := f[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return s, nil
}

type fakePayments struct {
	items     map[int64]domain.Payment
	createErr error
}

func (f *fakePayments) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = int64(len(f.items) + 1)
	f.items[p.ID] = *p
	return p, nil
}

func (f *fakePayments) GetByID(_ context.Context, id int64) (*domain.Payment, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return &p, nil
}

func (f *fakePayments) List(context.Context) ([]*domain.Payment, error) {
	out := make([]*domain.Payment, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, &p)
	}
	return out, nil
}

func (f *fakePayments) Update(_ context.Context, p *domain.Payment) error {
	if _, ok := f.items[p.ID]; !ok {
		return paymentRepo.ErrPaymentNotFound
	}
	f.items[p.ID] = *p
	return nil
}

var paidAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(sessions fakeSessions, payments *fakePayments) *Service {
	return NewService(payments, sessions, fakeTx{}, logger.NewNop())
}

func TestCreate_AmountDefaultsToSessionCost(t *testing.T) {
	payments := &fakePayments{items: map[int64]domain.Payment{}}
	sessions := fakeSessions{1: {ID: 1, TotalCost: ptr.Ptr(decimal.RequireFromString("150.00"))}}

	created, err := newTestService(sessions, payments).Create(context.Background(), &models.CreatePaymentRequest{
		SessionID: 1,
		MethodID:  2,
		Time:      &paidAt,
	})

	require.NoError(t, err)
	assert.True(t, created.Amount.Equal(decimal.NewFromInt(150)))
}

func TestCreate_ExplicitAmountWins(t *testing.T) {
	payments := &fakePayments{items: map[int64]domain.Payment{}}
	sessions := fakeSessions{1: {ID: 1, TotalCost: ptr.Ptr(decimal.NewFromInt(150))}}

	created, err := newTestService(sessions, payments).Create(context.Background(), &models.CreatePaymentRequest{
		SessionID: 1,
		Amount:    ptr.Ptr(decimal.RequireFromString("99.999")),
		MethodID:  2,
		Time:      &paidAt,
	})

	require.NoError(t, err)
	assert.Equal(t, "100", created.Amount.String())
}

func TestCreate_Errors(t *testing.T) {
	openSession := fakeSessions{1: {ID: 1}}

	tests := []struct {
		name      string
		sessions  fakeSessions
		createErr error
		req       *models.CreatePaymentRequest
		want      error
	}{
		{
			name:     "session not found",
			sessions: fakeSessions{},
			req:      &models.CreatePaymentRequest{SessionID: 5, MethodID: 1, Time: &paidAt},
			want:     ErrSessionNotFound,
		},
		{
			name:     "no amount and no session cost",
			sessions: openSession,
			req:      &models.CreatePaymentRequest{SessionID: 1, MethodID: 1, Time: &paidAt},
			want:     ErrAmountUnavailable,
		},
		{
			name:      "unknown method",
			sessions:  openSession,
			createErr: paymentRepo.ErrReferenceNotFound,
			req:       &models.CreatePaymentRequest{SessionID: 1, Amount: ptr.Ptr(decimal.NewFromInt(1)), MethodID: 9, Time: &paidAt},
			want:      ErrReferenceNotFound,
		},
		{
			name:      "storage failure",
			sessions:  openSession,
			createErr: errors.New("broken pipe"),
			req:       &models.CreatePaymentRequest{SessionID: 1, Amount: ptr.Ptr(decimal.NewFromInt(1)), MethodID: 1, Time: &paidAt},
			want:      ErrInternal,
		},
		{
			name:     "missing time",
			sessions: openSession,
			req:      &models.CreatePaymentRequest{SessionID: 1, MethodID: 1},
			want:     ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := &fakePayments{items: map[int64]domain.Payment{}, createErr: tt.createErr}

			_, err := newTestService(tt.sessions, payments).Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdate_Partial(t *testing.T) {
	payments := &fakePayments{items: map[int64]domain.Payment{
		1: {ID: 1, SessionID: 1, Amount: decimal.NewFromInt(100), MethodID: 1, Time: paidAt},
	}}
	svc := newTestService(fakeSessions{}, payments)

	require.NoError(t, svc.Update(context.Background(), 1, &models.UpdatePaymentRequest{MethodID: ptr.Ptr(int64(3))}))

	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.MethodID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, paidAt, got.Time)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(fakeSessions{}, &fakePayments{items: map[int64]domain.Payment{}})

	err := svc.Update(context.Background(), 42, &models.UpdatePaymentRequest{})
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
