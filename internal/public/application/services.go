package application

import (
	"context"

	"github.com/damemahigan/site-services/api/internal/public/domain"
)

// PracticeRepository is the read port for practices.
type PracticeRepository interface {
	FindAll(ctx context.Context) ([]domain.Practice, error)
	FindByID(ctx context.Context, id string) (*domain.Practice, error)
}

// TestimonialRepository serves the public testimonial surface: visitors read
// the list and may submit new entries.
type TestimonialRepository interface {
	FindAll(ctx context.Context) ([]domain.Testimonial, error)
	Create(ctx context.Context, testimonial *domain.Testimonial) error
}

// ServiceRepository is the read port for pricing entries.
type ServiceRepository interface {
	FindAll(ctx context.Context) ([]domain.Service, error)
}

// GalleryRepository is the read port for gallery images.
type GalleryRepository interface {
	FindAll(ctx context.Context) ([]domain.GalleryImage, error)
}

// CarouselRepository is the read port for carousel slides.
type CarouselRepository interface {
	FindAll(ctx context.Context) ([]domain.CarouselImage, error)
}

// ExcludedPracticeRepository is the read port for the hard-limit list.
type ExcludedPracticeRepository interface {
	FindAll(ctx context.Context) ([]domain.ExcludedPractice, error)
}

// ContactFormRepository is the write port for visitor contact submissions.
type ContactFormRepository interface {
	Create(ctx context.Context, form *domain.ContactForm) error
}

// ContentQueryService exposes every public read surface. List reads degrade
// to an empty slice on failure so a transient store error never breaks a
// listing page; the single-entity read propagates its failure.
type ContentQueryService interface {
	Practices(ctx context.Context) []domain.Practice
	PracticeByID(ctx context.Context, id string) (*domain.Practice, error)
	Testimonials(ctx context.Context) []domain.Testimonial
	Services(ctx context.Context) []domain.Service
	GalleryImages(ctx context.Context) []domain.GalleryImage
	CarouselImages(ctx context.Context) []domain.CarouselImage
	ExcludedPractices(ctx context.Context) []domain.ExcludedPractice
}

// SubmitTestimonialCommand captures an anonymous testimonial submission.
type SubmitTestimonialCommand struct {
	Content string
	Date    string
}

// TestimonialCommandService handles visitor testimonial writes.
type TestimonialCommandService interface {
	Submit(ctx context.Context, cmd SubmitTestimonialCommand) (*domain.Testimonial, error)
}

// SubmitContactFormCommand captures a booking request. Field validation has
// already happened at the HTTP boundary.
type SubmitContactFormCommand struct {
	NameOrPseudo        string
	Age                 string
	Height              string
	Weight              string
	ExperienceLevel     string
	DesiredPractices    string
	Limits              string
	FetishSpecification string
	Email               string
	Phone               string
	ContactPreference   string
	SessionDuration     string
}

// ContactCommandService handles contact-form submissions.
type ContactCommandService interface {
	Submit(ctx context.Context, cmd SubmitContactFormCommand) (*domain.ContactForm, error)
}
