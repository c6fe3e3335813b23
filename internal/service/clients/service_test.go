package clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	clientRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/client"
	"github.com/m04kA/SMC-ParkingService/internal/service/clients/models"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type memoryRepo struct {
	items  map[int64]*domain.Client
	nextID int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: map[int64]*domain.Client{}}
}

func (m *memoryRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	m.nextID++
	c.ID = m.nextID
	copied := *c
	m.items[c.ID] = &copied
	return c, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *memoryRepo) List(context.Context) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(m.items))
	for _, c := range m.items {
		out = append(out, c)
	}
	return out, nil
}

func (m *memoryRepo) Update(_ context.Context, c *domain.Client) error {
	if _, ok := m.items[c.ID]; !ok {
		return clientRepo.ErrClientNotFound
	}
	copied := *c
	m.items[c.ID] = &copied
	return nil
}

func TestCreateAndPartialUpdate(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, logger.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateClientRequest{Name: "Иван", Surname: "Петров", Phone: "+70000000000"})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, created.ID, &models.UpdateClientRequest{Phone: ptr.Ptr("+71111111111")}))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Иван", got.Name)
	assert.Equal(t, "Петров", got.Surname)
	assert.Equal(t, "+71111111111", got.Phone)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newMemoryRepo(), logger.NewNop())

	_, err := svc.Create(context.Background(), &models.CreateClientRequest{Name: " ", Surname: "X", Phone: "1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newMemoryRepo(), logger.NewNop())

	err := svc.Update(context.Background(), 1, &models.UpdateClientRequest{Name: ptr.Ptr("A")})
	assert.ErrorIs(t, err, ErrClientNotFound)
}
