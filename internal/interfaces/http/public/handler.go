package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	publicapp "github.com/damemahigan/site-services/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger               *log.Logger
	content              publicapp.ContentQueryService
	testimonials         publicapp.TestimonialCommandService
	contacts             publicapp.ContactCommandService
	httpClient           *http.Client
	messengerEndpoint    string
	messengerDestination string
	failedNotifications  *mongo.Collection
	adminContactBaseURL  string
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger               *log.Logger
	Content              publicapp.ContentQueryService
	Testimonials         publicapp.TestimonialCommandService
	Contacts             publicapp.ContactCommandService
	HTTPClient           *http.Client
	MessengerEndpoint    string
	MessengerDestination string
	FailedNotifications  *mongo.Collection
	AdminContactBaseURL  string
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:               cfg.Logger,
		content:              cfg.Content,
		testimonials:         cfg.Testimonials,
		contacts:             cfg.Contacts,
		httpClient:           cfg.HTTPClient,
		messengerEndpoint:    cfg.MessengerEndpoint,
		messengerDestination: cfg.MessengerDestination,
		failedNotifications:  cfg.FailedNotifications,
		adminContactBaseURL:  cfg.AdminContactBaseURL,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/practices", h.practiceListHandler())
	r.Get("/practices/{id}", h.practiceDetailHandler())
	r.Get("/testimonials", h.testimonialListHandler())
	r.Post("/testimonials", h.testimonialCreateHandler())
	r.Get("/services", h.serviceListHandler())
	r.Get("/gallery", h.galleryListHandler())
	r.Get("/carousel", h.carouselListHandler())
	r.Get("/excluded-practices", h.excludedPracticeListHandler())
	r.Post("/contact", h.contactCreateHandler())
}
