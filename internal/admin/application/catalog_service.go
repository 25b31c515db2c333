package application

import (
	"context"
	"fmt"

	admindomain "github.com/damemahigan/site-services/api/internal/admin/domain"
	"github.com/damemahigan/site-services/api/internal/cache"
	"github.com/damemahigan/site-services/api/internal/public/domain"
)

type catalogService struct {
	repo  ServiceRepository
	cache *cache.Cache
}

// NewCatalogService creates the admin pricing service.
func NewCatalogService(repo ServiceRepository, c *cache.Cache) CatalogService {
	return &catalogService{repo: repo, cache: c}
}

func (s *catalogService) Create(ctx context.Context, cmd UpsertServiceCommand) (*domain.Service, error) {
	position := 0
	if cmd.Position != nil {
		position = *cmd.Position
	} else {
		count, err := s.repo.Count(ctx)
		if err != nil {
			return nil, err
		}
		position = count
	}

	service := &domain.Service{
		Name:        cmd.Name,
		Price:       cmd.Price,
		Description: cmd.Description,
		Position:    position,
	}
	if err := s.repo.Create(ctx, service); err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.KeyServices)
	return service, nil
}

func (s *catalogService) Update(ctx context.Context, id string, cmd UpsertServiceCommand) error {
	existing, err := s.currentPosition(ctx, id)
	if err != nil {
		return err
	}
	position := existing
	if cmd.Position != nil {
		position = *cmd.Position
	}

	service := domain.Service{
		ID:          id,
		Name:        cmd.Name,
		Price:       cmd.Price,
		Description: cmd.Description,
		Position:    position,
	}
	if err := s.repo.Update(ctx, service); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyServices)
	return nil
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyServices)
	return nil
}

// Reorder rewrites positions so that list output follows orderedIDs.
func (s *catalogService) Reorder(ctx context.Context, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return fmt.Errorf("%w: empty id list", ErrInvalidReorder)
	}

	services, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	positions, err := admindomain.ReorderPositions(services, orderedIDs)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReorder, err)
	}
	if err := s.repo.UpdatePositions(ctx, positions); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyServices)
	return nil
}

func (s *catalogService) currentPosition(ctx context.Context, id string) (int, error) {
	services, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	for _, service := range services {
		if service.ID == id {
			return service.Position, nil
		}
	}
	return 0, domain.ErrNotFound
}
