package application

import (
	"context"
	"log"

	"github.com/damemahigan/site-services/api/internal/cache"
	"github.com/damemahigan/site-services/api/internal/public/domain"
)

// contentQueryService is the concrete implementation of ContentQueryService.
// All collection reads go through the synchronized query cache.
type contentQueryService struct {
	practices    PracticeRepository
	testimonials TestimonialRepository
	services     ServiceRepository
	gallery      GalleryRepository
	carousel     CarouselRepository
	excluded     ExcludedPracticeRepository
	cache        *cache.Cache
	logger       *log.Logger
}

// ContentQueryConfig provides dependencies for the query service.
type ContentQueryConfig struct {
	Practices    PracticeRepository
	Testimonials TestimonialRepository
	Services     ServiceRepository
	Gallery      GalleryRepository
	Carousel     CarouselRepository
	Excluded     ExcludedPracticeRepository
	Cache        *cache.Cache
	Logger       *log.Logger
}

// NewContentQueryService creates the cached public read service.
func NewContentQueryService(cfg ContentQueryConfig) ContentQueryService {
	return &contentQueryService{
		practices:    cfg.Practices,
		testimonials: cfg.Testimonials,
		services:     cfg.Services,
		gallery:      cfg.Gallery,
		carousel:     cfg.Carousel,
		excluded:     cfg.Excluded,
		cache:        cfg.Cache,
		logger:       cfg.Logger,
	}
}

func (s *contentQueryService) Practices(ctx context.Context) []domain.Practice {
	practices, err := cache.Load(ctx, s.cache, cache.KeyPractices, s.practices.FindAll)
	if err != nil {
		s.logger.Printf("practice list fetch failed: %v", err)
		return []domain.Practice{}
	}
	return practices
}

func (s *contentQueryService) PracticeByID(ctx context.Context, id string) (*domain.Practice, error) {
	return cache.Load(ctx, s.cache, cache.PracticeKey(id), func(ctx context.Context) (*domain.Practice, error) {
		return s.practices.FindByID(ctx, id)
	})
}

func (s *contentQueryService) Testimonials(ctx context.Context) []domain.Testimonial {
	testimonials, err := cache.Load(ctx, s.cache, cache.KeyTestimonials, s.testimonials.FindAll)
	if err != nil {
		s.logger.Printf("testimonial list fetch failed: %v", err)
		return []domain.Testimonial{}
	}
	return testimonials
}

func (s *contentQueryService) Services(ctx context.Context) []domain.Service {
	services, err := cache.Load(ctx, s.cache, cache.KeyServices, s.services.FindAll)
	if err != nil {
		s.logger.Printf("service list fetch failed: %v", err)
		return []domain.Service{}
	}
	return services
}

func (s *contentQueryService) GalleryImages(ctx context.Context) []domain.GalleryImage {
	images, err := cache.Load(ctx, s.cache, cache.KeyGallery, s.gallery.FindAll)
	if err != nil {
		s.logger.Printf("gallery list fetch failed: %v", err)
		return []domain.GalleryImage{}
	}
	return images
}

func (s *contentQueryService) CarouselImages(ctx context.Context) []domain.CarouselImage {
	images, err := cache.Load(ctx, s.cache, cache.KeyCarousel, s.carousel.FindAll)
	if err != nil {
		s.logger.Printf("carousel list fetch failed: %v", err)
		return []domain.CarouselImage{}
	}
	return images
}

func (s *contentQueryService) ExcludedPractices(ctx context.Context) []domain.ExcludedPractice {
	practices, err := cache.Load(ctx, s.cache, cache.KeyExcludedPractices, s.excluded.FindAll)
	if err != nil {
		s.logger.Printf("excluded practice list fetch failed: %v", err)
		return []domain.ExcludedPractice{}
	}
	return practices
}
