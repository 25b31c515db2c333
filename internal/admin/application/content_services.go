package application

import (
	"context"
	"log"
	"strings"

	admindomain "github.com/damemahigan/site-services/api/internal/admin/domain"
	"github.com/damemahigan/site-services/api/internal/cache"
	"github.com/damemahigan/site-services/api/internal/public/domain"
)

const (
	galleryImageFolder  = "gallery"
	carouselImageFolder = "carousel"
)

type testimonialService struct {
	repo  TestimonialRepository
	cache *cache.Cache
}

// NewTestimonialService creates the admin testimonial moderation service.
func NewTestimonialService(repo TestimonialRepository, c *cache.Cache) TestimonialService {
	return &testimonialService{repo: repo, cache: c}
}

func (s *testimonialService) Respond(ctx context.Context, id, response string) error {
	if err := s.repo.UpdateResponse(ctx, id, response); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyTestimonials)
	return nil
}

func (s *testimonialService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyTestimonials)
	return nil
}

type galleryService struct {
	repo   GalleryRepository
	images ImageStore
	cache  *cache.Cache
	logger *log.Logger
}

// NewGalleryService creates the admin gallery service.
func NewGalleryService(repo GalleryRepository, images ImageStore, c *cache.Cache, logger *log.Logger) GalleryService {
	return &galleryService{repo: repo, images: images, cache: c, logger: logger}
}

func (s *galleryService) Create(ctx context.Context, cmd UpsertGalleryImageCommand) (*domain.GalleryImage, error) {
	image := &domain.GalleryImage{
		URL:   s.materialize(ctx, cmd.URL),
		Title: cmd.Title,
	}
	if err := s.repo.Create(ctx, image); err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.KeyGallery)
	return image, nil
}

func (s *galleryService) Update(ctx context.Context, id string, cmd UpsertGalleryImageCommand) error {
	image := domain.GalleryImage{
		ID:    id,
		URL:   s.materialize(ctx, cmd.URL),
		Title: cmd.Title,
	}
	if err := s.repo.Update(ctx, image); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyGallery)
	return nil
}

func (s *galleryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyGallery)
	return nil
}

func (s *galleryService) materialize(ctx context.Context, value string) string {
	hosted, err := s.images.Materialize(ctx, value, galleryImageFolder)
	if err != nil {
		s.logger.Printf("gallery image upload failed, keeping inline value: %v", err)
		return value
	}
	return hosted
}

type carouselService struct {
	repo   CarouselRepository
	images ImageStore
	cache  *cache.Cache
	logger *log.Logger
}

// NewCarouselService creates the admin carousel service.
func NewCarouselService(repo CarouselRepository, images ImageStore, c *cache.Cache, logger *log.Logger) CarouselService {
	return &carouselService{repo: repo, images: images, cache: c, logger: logger}
}

func (s *carouselService) Create(ctx context.Context, cmd UpsertCarouselImageCommand) (*domain.CarouselImage, error) {
	image := &domain.CarouselImage{
		Src: s.materialize(ctx, cmd.Src),
		Alt: cmd.Alt,
	}
	if err := s.repo.Create(ctx, image); err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.KeyCarousel)
	return image, nil
}

func (s *carouselService) Update(ctx context.Context, id string, cmd UpsertCarouselImageCommand) error {
	image := domain.CarouselImage{
		ID:  id,
		Src: s.materialize(ctx, cmd.Src),
		Alt: cmd.Alt,
	}
	if err := s.repo.Update(ctx, image); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyCarousel)
	return nil
}

func (s *carouselService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyCarousel)
	return nil
}

func (s *carouselService) materialize(ctx context.Context, value string) string {
	hosted, err := s.images.Materialize(ctx, value, carouselImageFolder)
	if err != nil {
		s.logger.Printf("carousel image upload failed, keeping inline value: %v", err)
		return value
	}
	return hosted
}

type excludedPracticeService struct {
	repo  ExcludedPracticeRepository
	cache *cache.Cache
}

// NewExcludedPracticeService creates the hard-limit list service.
func NewExcludedPracticeService(repo ExcludedPracticeRepository, c *cache.Cache) ExcludedPracticeService {
	return &excludedPracticeService{repo: repo, cache: c}
}

// Add enforces case-insensitive uniqueness before any write reaches the
// gateway; a duplicate leaves the collection untouched.
func (s *excludedPracticeService) Add(ctx context.Context, name string) (*domain.ExcludedPractice, error) {
	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if admindomain.ExcludedNameTaken(existing, name) {
		return nil, ErrDuplicateExcludedPractice
	}

	practice := &domain.ExcludedPractice{Name: strings.TrimSpace(name)}
	if err := s.repo.Create(ctx, practice); err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.KeyExcludedPractices)
	return practice, nil
}

func (s *excludedPracticeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyExcludedPractices)
	return nil
}

type contactService struct {
	repo  ContactFormRepository
	cache *cache.Cache
}

// NewContactService creates the admin contact-form review service.
func NewContactService(repo ContactFormRepository, c *cache.Cache) ContactService {
	return &contactService{repo: repo, cache: c}
}

func (s *contactService) List(ctx context.Context) ([]domain.ContactForm, error) {
	return cache.Load(ctx, s.cache, cache.KeyContactForms, s.repo.FindAll)
}

func (s *contactService) Detail(ctx context.Context, id string) (*domain.ContactForm, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyContactForms)
	return nil
}
