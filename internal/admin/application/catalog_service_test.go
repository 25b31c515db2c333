package application

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damemahigan/site-services/api/internal/cache"
	"github.com/damemahigan/site-services/api/internal/public/domain"
)

type fakeServiceRepo struct {
	services []domain.Service
	nextID   int
}

func (f *fakeServiceRepo) FindAll(context.Context) ([]domain.Service, error) {
	out := make([]domain.Service, len(f.services))
	copy(out, f.services)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (f *fakeServiceRepo) Count(context.Context) (int, error) {
	return len(f.services), nil
}

func (f *fakeServiceRepo) Create(_ context.Context, service *domain.Service) error {
	f.nextID++
	service.ID = fmt.Sprintf("s%d", f.nextID)
	f.services = append(f.services, *service)
	return nil
}

func (f *fakeServiceRepo) Update(_ context.Context, service domain.Service) error {
	for i, s := range f.services {
		if s.ID == service.ID {
			f.services[i] = service
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeServiceRepo) UpdatePositions(_ context.Context, positions map[string]int) error {
	for i, s := range f.services {
		if pos, ok := positions[s.ID]; ok {
			f.services[i].Position = pos
		}
	}
	return nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id string) error {
	for i, s := range f.services {
		if s.ID == id {
			f.services = append(f.services[:i], f.services[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func seededServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{
		services: []domain.Service{
			{ID: "s1", Name: "Lecture érotique", Price: "100€", Position: 0},
			{ID: "s2", Name: "Séance 1h", Price: "150€", Position: 1},
			{ID: "s3", Name: "Séance 2h", Price: "250€", Position: 2},
		},
		nextID: 3,
	}
}

func TestCatalogServiceCreateDefaultsPositionToCount(t *testing.T) {
	repo := seededServiceRepo()
	svc := NewCatalogService(repo, cache.New())

	created, err := svc.Create(context.Background(), UpsertServiceCommand{Name: "Autre format", Price: "Sur devis"})
	require.NoError(t, err)
	assert.Equal(t, 3, created.Position, "a new entry appends to the end of the list")
}

func TestCatalogServiceCreateHonorsExplicitPosition(t *testing.T) {
	repo := seededServiceRepo()
	svc := NewCatalogService(repo, cache.New())

	pos := 1
	created, err := svc.Create(context.Background(), UpsertServiceCommand{Name: "Autre format", Price: "Sur devis", Position: &pos})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Position)
}

func TestCatalogServiceUpdateKeepsPositionWhenOmitted(t *testing.T) {
	repo := seededServiceRepo()
	svc := NewCatalogService(repo, cache.New())

	err := svc.Update(context.Background(), "s2", UpsertServiceCommand{Name: "Séance 1h", Price: "160€"})
	require.NoError(t, err)

	services, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "160€", services[1].Price)
	assert.Equal(t, 1, services[1].Position)
}

func TestCatalogServiceReorder(t *testing.T) {
	repo := seededServiceRepo()
	svc := NewCatalogService(repo, cache.New())

	require.NoError(t, svc.Reorder(context.Background(), []string{"s3", "s1", "s2"}))

	services, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	ids := []string{services[0].ID, services[1].ID, services[2].ID}
	assert.Equal(t, []string{"s3", "s1", "s2"}, ids)
}

func TestCatalogServiceReorderRejectsBadInput(t *testing.T) {
	repo := seededServiceRepo()
	svc := NewCatalogService(repo, cache.New())
	ctx := context.Background()

	assert.ErrorIs(t, svc.Reorder(ctx, nil), ErrInvalidReorder)
	assert.ErrorIs(t, svc.Reorder(ctx, []string{"s1", "ghost"}), ErrInvalidReorder)
	assert.ErrorIs(t, svc.Reorder(ctx, []string{"s1", "s1"}), ErrInvalidReorder)

	services, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "s1", services[0].ID, "a rejected reorder leaves positions untouched")
}
