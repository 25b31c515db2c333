package domain

import "time"

// Practice is a publicly visible practice card with its long-form detail page.
type Practice struct {
	ID              string
	Title           string
	Description     string
	ImageURL        string
	LongDescription string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Testimonial is a visitor-submitted testimonial. Response stays empty until
// the site owner answers it.
type Testimonial struct {
	ID        string
	Content   string
	Date      string
	Response  string
	CreatedAt time.Time
}

// GalleryImage is a single gallery entry.
type GalleryImage struct {
	ID        string
	URL       string
	Title     string
	CreatedAt time.Time
}

// CarouselImage is a home-page carousel slide. Display order is storage
// order.
type CarouselImage struct {
	ID  string
	Src string
	Alt string
}

// Service is a pricing entry. Price is free-form ("150€", "Sur devis").
// Display order follows Position ascending.
type Service struct {
	ID          string
	Name        string
	Price       string
	Description string
	Position    int
	CreatedAt   time.Time
}

// ExcludedPractice is a hard limit listed on the site. Names are unique
// case-insensitively.
type ExcludedPractice struct {
	ID   string
	Name string
}

// ContactForm is a booking request submitted from the contact page.
// Immutable once created, except for deletion.
type ContactForm struct {
	ID                  string
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
	CreatedAt           time.Time
}
