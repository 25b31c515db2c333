package application

import (
	"context"
	"errors"

	"github.com/damemahigan/site-services/api/internal/public/domain"
)

// Rule violations surfaced to the HTTP layer, which turns them into
// user-visible notifications.
var (
	ErrDuplicateExcludedPractice = errors.New("excluded practice already exists")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrInvalidReorder            = errors.New("invalid reorder request")
)

// PracticeRepository is the admin port for practice writes.
type PracticeRepository interface {
	FindAll(ctx context.Context) ([]domain.Practice, error)
	FindByID(ctx context.Context, id string) (*domain.Practice, error)
	Create(ctx context.Context, practice *domain.Practice) error
	Update(ctx context.Context, practice domain.Practice) error
	Delete(ctx context.Context, id string) error
}

// ServiceRepository is the admin port for pricing writes.
type ServiceRepository interface {
	FindAll(ctx context.Context) ([]domain.Service, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, service *domain.Service) error
	Update(ctx context.Context, service domain.Service) error
	UpdatePositions(ctx context.Context, positions map[string]int) error
	Delete(ctx context.Context, id string) error
}

// TestimonialRepository is the admin port for testimonial moderation.
type TestimonialRepository interface {
	UpdateResponse(ctx context.Context, id, response string) error
	Delete(ctx context.Context, id string) error
}

// GalleryRepository is the admin port for gallery writes.
type GalleryRepository interface {
	Create(ctx context.Context, image *domain.GalleryImage) error
	Update(ctx context.Context, image domain.GalleryImage) error
	Delete(ctx context.Context, id string) error
}

// CarouselRepository is the admin port for carousel writes.
type CarouselRepository interface {
	Create(ctx context.Context, image *domain.CarouselImage) error
	Update(ctx context.Context, image domain.CarouselImage) error
	Delete(ctx context.Context, id string) error
}

// ExcludedPracticeRepository is the admin port for the hard-limit list.
type ExcludedPracticeRepository interface {
	FindAll(ctx context.Context) ([]domain.ExcludedPractice, error)
	Create(ctx context.Context, practice *domain.ExcludedPractice) error
	Delete(ctx context.Context, id string) error
}

// ContactFormRepository is the admin port for reviewing submissions.
type ContactFormRepository interface {
	FindAll(ctx context.Context) ([]domain.ContactForm, error)
	FindByID(ctx context.Context, id string) (*domain.ContactForm, error)
	Delete(ctx context.Context, id string) error
}

// CredentialRepository stores the admin credential hash.
type CredentialRepository interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, hash string) error
}

// ImageStore materializes inline image data into hosted URLs. A value that
// is already hosted passes through unchanged.
type ImageStore interface {
	Materialize(ctx context.Context, value, folder string) (string, error)
}

// UpsertPracticeCommand carries the editable practice fields.
type UpsertPracticeCommand struct {
	Title           string
	Description     string
	ImageURL        string
	LongDescription string
}

// PracticeService manages the practice catalog.
type PracticeService interface {
	Create(ctx context.Context, cmd UpsertPracticeCommand) (*domain.Practice, error)
	Update(ctx context.Context, id string, cmd UpsertPracticeCommand) error
	Delete(ctx context.Context, id string) error
	// CollapseDuplicates removes every practice whose normalized title is
	// already taken, returning the number removed. Idempotent.
	CollapseDuplicates(ctx context.Context) (int, error)
}

// UpsertServiceCommand carries the editable pricing fields. Position is
// optional on create; it defaults to the current collection size.
type UpsertServiceCommand struct {
	Name        string
	Price       string
	Description string
	Position    *int
}

// CatalogService manages pricing entries.
type CatalogService interface {
	Create(ctx context.Context, cmd UpsertServiceCommand) (*domain.Service, error)
	Update(ctx context.Context, id string, cmd UpsertServiceCommand) error
	Delete(ctx context.Context, id string) error
	// Reorder rewrites positions so list order matches orderedIDs.
	Reorder(ctx context.Context, orderedIDs []string) error
}

// TestimonialService moderates visitor testimonials.
type TestimonialService interface {
	Respond(ctx context.Context, id, response string) error
	Delete(ctx context.Context, id string) error
}

// UpsertGalleryImageCommand carries the editable gallery fields.
type UpsertGalleryImageCommand struct {
	URL   string
	Title string
}

// GalleryService manages gallery images.
type GalleryService interface {
	Create(ctx context.Context, cmd UpsertGalleryImageCommand) (*domain.GalleryImage, error)
	Update(ctx context.Context, id string, cmd UpsertGalleryImageCommand) error
	Delete(ctx context.Context, id string) error
}

// UpsertCarouselImageCommand carries the editable carousel fields.
type UpsertCarouselImageCommand struct {
	Src string
	Alt string
}

// CarouselService manages home-page carousel slides.
type CarouselService interface {
	Create(ctx context.Context, cmd UpsertCarouselImageCommand) (*domain.CarouselImage, error)
	Update(ctx context.Context, id string, cmd UpsertCarouselImageCommand) error
	Delete(ctx context.Context, id string) error
}

// ExcludedPracticeService manages the hard-limit list.
type ExcludedPracticeService interface {
	// Add rejects a case-insensitive duplicate before any gateway write.
	Add(ctx context.Context, name string) (*domain.ExcludedPractice, error)
	Delete(ctx context.Context, id string) error
}

// ContactService reviews booking submissions.
type ContactService interface {
	List(ctx context.Context) ([]domain.ContactForm, error)
	Detail(ctx context.Context, id string) (*domain.ContactForm, error)
	Delete(ctx context.Context, id string) error
}

// AuthService is the admin-mode gate: password login issuing a bearer
// token, and in-band credential change. Not a security boundary beyond
// steering the UI; the default credential is seeded on first run.
type AuthService interface {
	Login(ctx context.Context, password string) (token string, err error)
	ChangePassword(ctx context.Context, current, next string) error
	VerifyToken(token string) error
}
