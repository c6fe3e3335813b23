package sessions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parking_session"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type fakeRepo struct {
	sessions   []*domain.ParkingSession
	lastFilter domain.SessionFilter
	err        error
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.ParkingSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, sessionRepo.ErrSessionNotFound
}

func (f *fakeRepo) List(_ context.Context, filter domain.SessionFilter) ([]*domain.ParkingSession, error) {
	f.lastFilter = filter
	return f.sessions, f.err
}

func TestGetByID(t *testing.T) {
	repo := &fakeRepo{sessions: []*domain.ParkingSession{{ID: 1}}}
	svc := NewService(repo, logger.NewNop())

	s, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.ID)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetByID_StorageError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("boom")}, logger.NewNop())

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestList_PassesFilter(t *testing.T) {
	repo := &fakeRepo{sessions: []*domain.ParkingSession{{ID: 1}, {ID: 2}}}
	svc := NewService(repo, logger.NewNop())

	list, err := svc.List(context.Background(), domain.SessionFilter{Active: ptr.Ptr(true)})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	require.NotNil(t, repo.lastFilter.Active)
	assert.True(t, *repo.lastFilter.Active)
}
