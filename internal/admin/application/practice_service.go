package application

import (
	"context"
	"errors"
	"log"

	admindomain "github.com/damemahigan/site-services/api/internal/admin/domain"
	"github.com/damemahigan/site-services/api/internal/cache"
	"github.com/damemahigan/site-services/api/internal/public/domain"
)

const practiceImageFolder = "practices"

type practiceService struct {
	repo   PracticeRepository
	images ImageStore
	cache  *cache.Cache
	logger *log.Logger
}

// NewPracticeService creates the admin practice service.
func NewPracticeService(repo PracticeRepository, images ImageStore, c *cache.Cache, logger *log.Logger) PracticeService {
	return &practiceService{repo: repo, images: images, cache: c, logger: logger}
}

func (s *practiceService) Create(ctx context.Context, cmd UpsertPracticeCommand) (*domain.Practice, error) {
	practice := &domain.Practice{
		Title:           cmd.Title,
		Description:     cmd.Description,
		ImageURL:        s.materialize(ctx, cmd.ImageURL),
		LongDescription: cmd.LongDescription,
	}
	if err := s.repo.Create(ctx, practice); err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.KeyPractices)
	return practice, nil
}

func (s *practiceService) Update(ctx context.Context, id string, cmd UpsertPracticeCommand) error {
	practice := domain.Practice{
		ID:              id,
		Title:           cmd.Title,
		Description:     cmd.Description,
		ImageURL:        s.materialize(ctx, cmd.ImageURL),
		LongDescription: cmd.LongDescription,
	}
	if err := s.repo.Update(ctx, practice); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyPractices, cache.PracticeKey(id))
	return nil
}

func (s *practiceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyPractices, cache.PracticeKey(id))
	return nil
}

// CollapseDuplicates is the explicit maintenance operation: it keeps one
// practice per normalized title and deletes the rest, reporting the count
// removed.
func (s *practiceService) CollapseDuplicates(ctx context.Context) (int, error) {
	practices, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	duplicates := admindomain.DuplicatePractices(practices)
	removed := 0
	for _, practice := range duplicates {
		if err := s.repo.Delete(ctx, practice.ID); err != nil {
			// A concurrent delete already removed it; the collapse result
			// is the same.
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return removed, err
		}
		removed++
	}

	if removed > 0 {
		keys := []string{cache.KeyPractices}
		for _, practice := range duplicates {
			keys = append(keys, cache.PracticeKey(practice.ID))
		}
		s.cache.Invalidate(keys...)
	}
	return removed, nil
}

// materialize uploads inline image data, falling back to the raw value when
// the upload fails so the write itself never breaks on storage trouble.
func (s *practiceService) materialize(ctx context.Context, value string) string {
	hosted, err := s.images.Materialize(ctx, value, practiceImageFolder)
	if err != nil {
		s.logger.Printf("practice image upload failed, keeping inline value: %v", err)
		return value
	}
	return hosted
}
