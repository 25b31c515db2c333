package admin

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/damemahigan/site-services/api/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger       *log.Logger
	practices    adminapp.PracticeService
	catalog      adminapp.CatalogService
	testimonials adminapp.TestimonialService
	gallery      adminapp.GalleryService
	carousel     adminapp.CarouselService
	excluded     adminapp.ExcludedPracticeService
	contacts     adminapp.ContactService
	auth         adminapp.AuthService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger       *log.Logger
	Practices    adminapp.PracticeService
	Catalog      adminapp.CatalogService
	Testimonials adminapp.TestimonialService
	Gallery      adminapp.GalleryService
	Carousel     adminapp.CarouselService
	Excluded     adminapp.ExcludedPracticeService
	Contacts     adminapp.ContactService
	Auth         adminapp.AuthService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:       cfg.Logger,
		practices:    cfg.Practices,
		catalog:      cfg.Catalog,
		testimonials: cfg.Testimonials,
		gallery:      cfg.Gallery,
		carousel:     cfg.Carousel,
		excluded:     cfg.Excluded,
		contacts:     cfg.Contacts,
		auth:         cfg.Auth,
	}
}

// Register mounts admin routes onto router. Everything except login sits
// behind the bearer-token middleware.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/auth/login", h.loginHandler())

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/auth/verify", h.verifyHandler())
		r.Post("/auth/password", h.changePasswordHandler())

		r.Post("/practices", h.practiceCreateHandler())
		r.Put("/practices/{id}", h.practiceUpdateHandler())
		r.Delete("/practices/{id}", h.practiceDeleteHandler())
		r.Post("/practices/collapse-duplicates", h.practiceCollapseHandler())

		r.Post("/services", h.serviceCreateHandler())
		r.Put("/services/{id}", h.serviceUpdateHandler())
		r.Delete("/services/{id}", h.serviceDeleteHandler())
		r.Patch("/services/reorder", h.serviceReorderHandler())

		r.Patch("/testimonials/{id}/response", h.testimonialRespondHandler())
		r.Delete("/testimonials/{id}", h.testimonialDeleteHandler())

		r.Post("/gallery", h.galleryCreateHandler())
		r.Put("/gallery/{id}", h.galleryUpdateHandler())
		r.Delete("/gallery/{id}", h.galleryDeleteHandler())

		r.Post("/carousel", h.carouselCreateHandler())
		r.Put("/carousel/{id}", h.carouselUpdateHandler())
		r.Delete("/carousel/{id}", h.carouselDeleteHandler())

		r.Post("/excluded-practices", h.excludedCreateHandler())
		r.Delete("/excluded-practices/{id}", h.excludedDeleteHandler())

		r.Get("/contact-forms", h.contactListHandler())
		r.Get("/contact-forms/{id}", h.contactDetailHandler())
		r.Delete("/contact-forms/{id}", h.contactDeleteHandler())
	})
}
