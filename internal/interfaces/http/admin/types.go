package admin

import (
	"time"

	"github.com/damemahigan/site-services/api/internal/public/domain"
)

type upsertPracticeRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ImageURL        string `json:"imageUrl"`
	LongDescription string `json:"longDescription,omitempty"`
}

type practiceResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ImageURL        string `json:"imageUrl"`
	LongDescription string `json:"longDescription,omitempty"`
}

type collapseDuplicatesResponse struct {
	Removed int `json:"removed"`
}

type upsertServiceRequest struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	Position    *int   `json:"position,omitempty"`
}

type serviceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	Position    int    `json:"position"`
}

type reorderServicesRequest struct {
	OrderedIDs []string `json:"orderedIds"`
}

type respondTestimonialRequest struct {
	Response string `json:"response"`
}

type upsertGalleryImageRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

type galleryImageResponse struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

type upsertCarouselImageRequest struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type carouselImageResponse struct {
	ID  string `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type addExcludedPracticeRequest struct {
	Name string `json:"name"`
}

type excludedPracticeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type contactFormSummaryResponse struct {
	ID              string    `json:"id"`
	NameOrPseudo    string    `json:"nameOrPseudo"`
	Email           string    `json:"email"`
	SessionDuration string    `json:"sessionDuration"`
	CreatedAt       time.Time `json:"createdAt"`
}

type contactFormDetailResponse struct {
	ID                  string    `json:"id"`
	NameOrPseudo        string    `json:"nameOrPseudo"`
	Age                 string    `json:"age"`
	Height              string    `json:"height"`
	Weight              string    `json:"weight"`
	ExperienceLevel     string    `json:"experienceLevel"`
	DesiredPractices    string    `json:"desiredPractices"`
	Limits              string    `json:"limits"`
	FetishSpecification string    `json:"fetishSpecification,omitempty"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	ContactPreference   string    `json:"contactPreference"`
	SessionDuration     string    `json:"sessionDuration"`
	CreatedAt           time.Time `json:"createdAt"`
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func buildPracticeResponse(p domain.Practice) practiceResponse {
	return practiceResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		ImageURL:        p.ImageURL,
		LongDescription: p.LongDescription,
	}
}

func buildServiceResponse(s domain.Service) serviceResponse {
	return serviceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Price:       s.Price,
		Description: s.Description,
		Position:    s.Position,
	}
}

func buildGalleryImageResponse(g domain.GalleryImage) galleryImageResponse {
	return galleryImageResponse{ID: g.ID, URL: g.URL, Title: g.Title}
}

func buildCarouselImageResponse(c domain.CarouselImage) carouselImageResponse {
	return carouselImageResponse{ID: c.ID, Src: c.Src, Alt: c.Alt}
}

func buildExcludedPracticeResponse(e domain.ExcludedPractice) excludedPracticeResponse {
	return excludedPracticeResponse{ID: e.ID, Name: e.Name}
}

func buildContactFormSummaryResponse(f domain.ContactForm) contactFormSummaryResponse {
	return contactFormSummaryResponse{
		ID:              f.ID,
		NameOrPseudo:    f.NameOrPseudo,
		Email:           f.Email,
		SessionDuration: f.SessionDuration,
		CreatedAt:       f.CreatedAt,
	}
}

func buildContactFormDetailResponse(f domain.ContactForm) contactFormDetailResponse {
	return contactFormDetailResponse{
		ID:                  f.ID,
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
	}
}
