package application

import (
	"context"

	"github.com/damemahigan/site-services/api/internal/cache"
	"github.com/damemahigan/site-services/api/internal/public/domain"
)

type testimonialCommandService struct {
	repo  TestimonialRepository
	cache *cache.Cache
}

// NewTestimonialCommandService creates the visitor testimonial write service.
func NewTestimonialCommandService(repo TestimonialRepository, c *cache.Cache) TestimonialCommandService {
	return &testimonialCommandService{repo: repo, cache: c}
}

// Submit stores the testimonial with an empty response and invalidates the
// testimonial listing so the next read observes it.
func (s *testimonialCommandService) Submit(ctx context.Context, cmd SubmitTestimonialCommand) (*domain.Testimonial, error) {
	testimonial := &domain.Testimonial{
		Content: cmd.Content,
		Date:    cmd.Date,
	}
	if err := s.repo.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.KeyTestimonials)
	return testimonial, nil
}
