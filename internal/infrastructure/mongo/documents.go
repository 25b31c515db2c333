package mongo

import (
	"errors"
	"fmt"
	"time"

	"github.com/damemahigan/site-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Document field names follow the relational iteration of the site
// (snake_case columns); the Go entities keep the application-facing shape.
// Each entity gets a total, bidirectional mapping pair below.

// PracticeDocument is the stored shape of a practice.
type PracticeDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Description     string             `bson:"description"`
	ImageURL        string             `bson:"image_url"`
	LongDescription string             `bson:"long_description,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

// TestimonialDocument is the stored shape of a testimonial.
type TestimonialDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	Date      string             `bson:"date"`
	Response  string             `bson:"response,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

// GalleryImageDocument is the stored shape of a gallery entry.
type GalleryImageDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	URL       string             `bson:"url"`
	Title     string             `bson:"title"`
	CreatedAt time.Time          `bson:"created_at"`
}

// CarouselImageDocument is the stored shape of a carousel slide.
type CarouselImageDocument struct {
	ID  primitive.ObjectID `bson:"_id,omitempty"`
	Src string             `bson:"src"`
	Alt string             `bson:"alt"`
}

// ServiceDocument is the stored shape of a pricing entry.
type ServiceDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       string             `bson:"price"`
	Description string             `bson:"description,omitempty"`
	Position    int                `bson:"position"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// ExcludedPracticeDocument is the stored shape of a hard limit.
type ExcludedPracticeDocument struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

// ContactFormDocument is the stored shape of a contact-form submission.
type ContactFormDocument struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	NameOrPseudo        string             `bson:"name_or_pseudo"`
	Age                 string             `bson:"age"`
	Height              string             `bson:"height"`
	Weight              string             `bson:"weight"`
	ExperienceLevel     string             `bson:"experience_level"`
	DesiredPractices    string             `bson:"desired_practices"`
	Limits              string             `bson:"limits"`
	FetishSpecification string             `bson:"fetish_specification,omitempty"`
	Email               string             `bson:"email"`
	Phone               string             `bson:"phone"`
	ContactPreference   string             `bson:"contact_preference"`
	SessionDuration     string             `bson:"session_duration"`
	CreatedAt           time.Time          `bson:"created_at"`
}

// CredentialDocument holds the single admin credential record.
type CredentialDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func mapPractice(doc PracticeDocument) domain.Practice {
	return domain.Practice{
		ID:              doc.ID.Hex(),
		Title:           doc.Title,
		Description:     doc.Description,
		ImageURL:        doc.ImageURL,
		LongDescription: doc.LongDescription,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}

func newPracticeDocument(p domain.Practice) (PracticeDocument, error) {
	id, err := objectIDOrNew(p.ID)
	if err != nil {
		return PracticeDocument{}, err
	}
	return PracticeDocument{
		ID:              id,
		Title:           p.Title,
		Description:     p.Description,
		ImageURL:        p.ImageURL,
		LongDescription: p.LongDescription,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}, nil
}

func mapTestimonial(doc TestimonialDocument) domain.Testimonial {
	return domain.Testimonial{
		ID:        doc.ID.Hex(),
		Content:   doc.Content,
		Date:      doc.Date,
		Response:  doc.Response,
		CreatedAt: doc.CreatedAt,
	}
}

func newTestimonialDocument(t domain.Testimonial) (TestimonialDocument, error) {
	id, err := objectIDOrNew(t.ID)
	if err != nil {
		return TestimonialDocument{}, err
	}
	return TestimonialDocument{
		ID:        id,
		Content:   t.Content,
		Date:      t.Date,
		Response:  t.Response,
		CreatedAt: t.CreatedAt,
	}, nil
}

func mapGalleryImage(doc GalleryImageDocument) domain.GalleryImage {
	return domain.GalleryImage{
		ID:        doc.ID.Hex(),
		URL:       doc.URL,
		Title:     doc.Title,
		CreatedAt: doc.CreatedAt,
	}
}

func newGalleryImageDocument(g domain.GalleryImage) (GalleryImageDocument, error) {
	id, err := objectIDOrNew(g.ID)
	if err != nil {
		return GalleryImageDocument{}, err
	}
	return GalleryImageDocument{
		ID:        id,
		URL:       g.URL,
		Title:     g.Title,
		CreatedAt: g.CreatedAt,
	}, nil
}

func mapCarouselImage(doc CarouselImageDocument) domain.CarouselImage {
	return domain.CarouselImage{
		ID:  doc.ID.Hex(),
		Src: doc.Src,
		Alt: doc.Alt,
	}
}

func newCarouselImageDocument(c domain.CarouselImage) (CarouselImageDocument, error) {
	id, err := objectIDOrNew(c.ID)
	if err != nil {
		return CarouselImageDocument{}, err
	}
	return CarouselImageDocument{
		ID:  id,
		Src: c.Src,
		Alt: c.Alt,
	}, nil
}

func mapService(doc ServiceDocument) domain.Service {
	return domain.Service{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Price:       doc.Price,
		Description: doc.Description,
		Position:    doc.Position,
		CreatedAt:   doc.CreatedAt,
	}
}

func newServiceDocument(s domain.Service) (ServiceDocument, error) {
	id, err := objectIDOrNew(s.ID)
	if err != nil {
		return ServiceDocument{}, err
	}
	return ServiceDocument{
		ID:          id,
		Name:        s.Name,
		Price:       s.Price,
		Description: s.Description,
		Position:    s.Position,
		CreatedAt:   s.CreatedAt,
	}, nil
}

func mapExcludedPractice(doc ExcludedPracticeDocument) domain.ExcludedPractice {
	return domain.ExcludedPractice{
		ID:   doc.ID.Hex(),
		Name: doc.Name,
	}
}

func newExcludedPracticeDocument(e domain.ExcludedPractice) (ExcludedPracticeDocument, error) {
	id, err := objectIDOrNew(e.ID)
	if err != nil {
		return ExcludedPracticeDocument{}, err
	}
	return ExcludedPracticeDocument{
		ID:   id,
		Name: e.Name,
	}, nil
}

func mapContactForm(doc ContactFormDocument) domain.ContactForm {
	return domain.ContactForm{
		ID:                  doc.ID.Hex(),
		NameOrPseudo:        doc.NameOrPseudo,
		Age:                 doc.Age,
		Height:              doc.Height,
		Weight:              doc.Weight,
		ExperienceLevel:     doc.ExperienceLevel,
		DesiredPractices:    doc.DesiredPractices,
		Limits:              doc.Limits,
		FetishSpecification: doc.FetishSpecification,
		Email:               doc.Email,
		Phone:               doc.Phone,
		ContactPreference:   doc.ContactPreference,
		SessionDuration:     doc.SessionDuration,
		CreatedAt:           doc.CreatedAt,
	}
}

func newContactFormDocument(f domain.ContactForm) (ContactFormDocument, error) {
	id, err := objectIDOrNew(f.ID)
	if err != nil {
		return ContactFormDocument{}, err
	}
	return ContactFormDocument{
		ID:                  id,
		NameOrPseudo:        f.NameOrPseudo,
		Age:                 f.Age,
		Height:              f.Height,
		Weight:              f.Weight,
		ExperienceLevel:     f.ExperienceLevel,
		DesiredPractices:    f.DesiredPractices,
		Limits:              f.Limits,
		FetishSpecification: f.FetishSpecification,
		Email:               f.Email,
		Phone:               f.Phone,
		ContactPreference:   f.ContactPreference,
		SessionDuration:     f.SessionDuration,
		CreatedAt:           f.CreatedAt,
	}, nil
}

// parseID converts a client-supplied hex id. A malformed id targets nothing,
// so it maps to ErrNotFound rather than a query failure.
func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id %q", domain.ErrNotFound, id)
	}
	return objectID, nil
}

func objectIDOrNew(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NewObjectID(), nil
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id %q", domain.ErrStoreQuery, id)
	}
	return objectID, nil
}

// wrapReadErr classifies a driver read error into the domain taxonomy.
func wrapReadErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return domain.ErrNotFound
	case mongo.IsNetworkError(err), mongo.IsTimeout(err), errors.Is(err, mongo.ErrClientDisconnected):
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", domain.ErrStoreQuery, err)
	}
}

// wrapWriteErr classifies a driver write error into the domain taxonomy.
func wrapWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return domain.ErrNotFound
	case mongo.IsNetworkError(err), mongo.IsTimeout(err), errors.Is(err, mongo.ErrClientDisconnected):
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}
}
