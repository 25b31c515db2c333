package public

import (
	"time"

	"github.com/damemahigan/site-services/api/internal/public/domain"
)

type practiceResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ImageURL        string `json:"imageUrl"`
	LongDescription string `json:"longDescription,omitempty"`
}

type testimonialResponse struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Response string `json:"response,omitempty"`
}

type serviceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	Position    int    `json:"position"`
}

type galleryImageResponse struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

type carouselImageResponse struct {
	ID  string `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type excludedPracticeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type contactCreatedResponse struct {
	Status    string    `json:"status"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
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

func buildTestimonialResponse(t domain.Testimonial) testimonialResponse {
	return testimonialResponse{
		ID:       t.ID,
		Content:  t.Content,
		Date:     t.Date,
		Response: t.Response,
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
