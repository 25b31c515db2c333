package application

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damemahigan/site-services/api/internal/cache"
	"github.com/damemahigan/site-services/api/internal/public/domain"
)

type stubPracticeRepo struct {
	practices []domain.Practice
	err       error
	calls     int
}

func (s *stubPracticeRepo) FindAll(context.Context) ([]domain.Practice, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.practices, nil
}

func (s *stubPracticeRepo) FindByID(_ context.Context, id string) (*domain.Practice, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.practices {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubServiceRepo struct {
	services []domain.Service
	err      error
}

func (s *stubServiceRepo) FindAll(context.Context) ([]domain.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.services, nil
}

func newQueryService(practices *stubPracticeRepo, services *stubServiceRepo, c *cache.Cache) ContentQueryService {
	if services == nil {
		services = &stubServiceRepo{}
	}
	return NewContentQueryService(ContentQueryConfig{
		Practices: practices,
		Services:  services,
		Cache:     c,
		Logger:    log.New(io.Discard, "", 0),
	})
}

func TestPracticesListDegradesToEmptyOnFailure(t *testing.T) {
	repo := &stubPracticeRepo{err: errors.New("connection refused")}
	svc := newQueryService(repo, nil, cache.New())

	practices := svc.Practices(context.Background())
	require.NotNil(t, practices, "a failed list read degrades to an empty slice")
	assert.Empty(t, practices)
}

func TestPracticesListServedFromCache(t *testing.T) {
	repo := &stubPracticeRepo{practices: []domain.Practice{{ID: "p1", Title: "Shibari"}}}
	svc := newQueryService(repo, nil, cache.New())
	ctx := context.Background()

	first := svc.Practices(ctx)
	second := svc.Practices(ctx)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls, "the second read must hit the cache")
}

func TestPracticesListServesStaleOnFailedRefresh(t *testing.T) {
	repo := &stubPracticeRepo{practices: []domain.Practice{{ID: "p1", Title: "Shibari"}}}
	c := cache.New()
	svc := newQueryService(repo, nil, c)
	ctx := context.Background()

	require.Len(t, svc.Practices(ctx), 1)

	c.Invalidate(cache.KeyPractices)
	repo.err = errors.New("connection refused")

	practices := svc.Practices(ctx)
	require.Len(t, practices, 1, "a failed refresh serves the last good value")
	assert.Equal(t, "Shibari", practices[0].Title)
}

func TestPracticeByIDPropagatesNotFound(t *testing.T) {
	repo := &stubPracticeRepo{}
	svc := newQueryService(repo, nil, cache.New())

	_, err := svc.PracticeByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServicesListKeepsStoreOrder(t *testing.T) {
	repo := &stubServiceRepo{services: []domain.Service{
		{ID: "s1", Name: "Lecture érotique", Position: 0},
		{ID: "s2", Name: "Séance 1h", Position: 1},
	}}
	svc := newQueryService(&stubPracticeRepo{}, repo, cache.New())

	services := svc.Services(context.Background())
	require.Len(t, services, 2)
	assert.Equal(t, "s1", services[0].ID)
}
