package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	adminapp "github.com/damemahigan/site-services/api/internal/admin/application"
	"github.com/damemahigan/site-services/api/internal/cache"
	"github.com/damemahigan/site-services/api/internal/config"
	"github.com/damemahigan/site-services/api/internal/infrastructure/media"
	mongodoc "github.com/damemahigan/site-services/api/internal/infrastructure/mongo"
	adminhttp "github.com/damemahigan/site-services/api/internal/interfaces/http/admin"
	commonhttp "github.com/damemahigan/site-services/api/internal/interfaces/http/common"
	publichttp "github.com/damemahigan/site-services/api/internal/interfaces/http/public"
	publicapp "github.com/damemahigan/site-services/api/internal/public/application"
)

// Server manages the HTTP lifecycle and wires repositories, cache and
// application services into the public and admin handlers. It is the
// composition root: no domain logic lives here.
type Server struct {
	logger               *log.Logger
	client               *mongo.Client
	database             *mongo.Database
	addr                 string
	allowedOrigins       []string
	httpClient           *http.Client
	messengerEndpoint    string
	messengerDestination string
	adminContactBaseURL  string
	failedNotifications  *mongo.Collection

	contentCache  *cache.Cache
	contentQuery  publicapp.ContentQueryService
	testimonials  publicapp.TestimonialCommandService
	contacts      publicapp.ContactCommandService
	adminPractice adminapp.PracticeService
	adminCatalog  adminapp.CatalogService
	adminTestim   adminapp.TestimonialService
	adminGallery  adminapp.GalleryService
	adminCarousel adminapp.CarouselService
	adminExcluded adminapp.ExcludedPracticeService
	adminContacts adminapp.ContactService
	auth          adminapp.AuthService
	credentials   adminapp.CredentialRepository
}

// Run starts the HTTP server with routing, middleware and graceful shutdown.
func (s *Server) Run() error {
	if err := adminapp.EnsureCredential(context.Background(), s.credentials); err != nil {
		s.logger.Printf("default admin credential bootstrap failed: %v", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:               s.logger,
		Content:              s.contentQuery,
		Testimonials:         s.testimonials,
		Contacts:             s.contacts,
		HTTPClient:           s.httpClient,
		MessengerEndpoint:    s.messengerEndpoint,
		MessengerDestination: s.messengerDestination,
		FailedNotifications:  s.failedNotifications,
		AdminContactBaseURL:  s.adminContactBaseURL,
	})
	publicHandler.Register(router)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:       s.logger,
		Practices:    s.adminPractice,
		Catalog:      s.adminCatalog,
		Testimonials: s.adminTestim,
		Gallery:      s.adminGallery,
		Carousel:     s.adminCarousel,
		Excluded:     s.adminExcluded,
		Contacts:     s.adminContacts,
		Auth:         s.auth,
	})
	router.Route("/admin", func(r chi.Router) {
		adminHandler.Register(r, s.authMiddleware)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP server listening on %s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// withCORS returns a middleware adding CORS headers for allowed origins.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler reports MongoDB reachability for monitoring, nothing more.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// authMiddleware validates the admin bearer token and marks the context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "L'en-tête Authorization est manquant"})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Un jeton Bearer est attendu"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Le jeton d'accès est vide"})
			return
		}

		if err := s.auth.VerifyToken(tokenString); err != nil {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Le jeton d'accès est invalide"})
			return
		}

		next.ServeHTTP(w, r.WithContext(commonhttp.ContextWithAdmin(r.Context())))
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Printf("JSON encode failed: %v", err)
	}
}

func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("MongoDB disconnect error: %v", err)
	}
}

// waitForShutdown watches ListenAndServe and OS signals to shut down
// gracefully.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("server exited abnormally: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("received signal %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("server shutdown error: %v", err)
		}
	}

	srv.shutdown(context.Background())
}

// inlineImageStore keeps image values untouched when object storage is not
// configured; inline data URLs then stay inline.
type inlineImageStore struct{}

func (inlineImageStore) Materialize(_ context.Context, value, _ string) (string, error) {
	return value, nil
}

func newImageStore(cfg config.Config) adminapp.ImageStore {
	if cfg.Media.AccessKey == "" || cfg.Media.SecretKey == "" || cfg.Media.PublicBaseURL == "" {
		cfg.ServerLog.Printf("object storage not configured, keeping images inline")
		return inlineImageStore{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploader, err := media.New(ctx, media.Config{
		Region:        cfg.Media.Region,
		AccessKey:     cfg.Media.AccessKey,
		SecretKey:     cfg.Media.SecretKey,
		Endpoint:      cfg.Media.Endpoint,
		Bucket:        cfg.Media.Bucket,
		PublicBaseURL: cfg.Media.PublicBaseURL,
	})
	if err != nil {
		cfg.ServerLog.Printf("object storage init failed, keeping images inline: %v", err)
		return inlineImageStore{}
	}
	return uploader
}

// New assembles repositories, cache, application services and handlers.
func New(cfg config.Config, client *mongo.Client) *Server {
	srv := &Server{
		logger:               cfg.ServerLog,
		client:               client,
		database:             client.Database(cfg.MongoDatabase),
		addr:                 cfg.Addr,
		allowedOrigins:       append([]string(nil), cfg.AllowedOrigins...),
		httpClient:           &http.Client{Timeout: cfg.MessengerTimeout},
		messengerEndpoint:    strings.TrimRight(strings.TrimSpace(cfg.MessengerEndpoint), "/"),
		messengerDestination: cfg.MessengerDestination,
		adminContactBaseURL:  cfg.AdminContactBaseURL,
	}
	srv.failedNotifications = srv.database.Collection(cfg.FailedNotificationCollection)

	practiceRepo := mongodoc.NewPracticeRepository(srv.database, cfg.PracticeCollection)
	testimonialRepo := mongodoc.NewTestimonialRepository(srv.database, cfg.TestimonialCollection)
	serviceRepo := mongodoc.NewServiceRepository(srv.database, cfg.ServiceCollection)
	galleryRepo := mongodoc.NewGalleryRepository(srv.database, cfg.GalleryCollection)
	carouselRepo := mongodoc.NewCarouselRepository(srv.database, cfg.CarouselCollection)
	excludedRepo := mongodoc.NewExcludedPracticeRepository(srv.database, cfg.ExcludedPracticeCollection)
	contactRepo := mongodoc.NewContactFormRepository(srv.database, cfg.ContactFormCollection)
	credentialRepo := mongodoc.NewCredentialRepository(srv.database, cfg.AdminSettingsCollection)

	srv.contentCache = cache.New()
	images := newImageStore(cfg)

	srv.contentQuery = publicapp.NewContentQueryService(publicapp.ContentQueryConfig{
		Practices:    practiceRepo,
		Testimonials: testimonialRepo,
		Services:     serviceRepo,
		Gallery:      galleryRepo,
		Carousel:     carouselRepo,
		Excluded:     excludedRepo,
		Cache:        srv.contentCache,
		Logger:       cfg.ServerLog,
	})
	srv.testimonials = publicapp.NewTestimonialCommandService(testimonialRepo, srv.contentCache)
	srv.contacts = publicapp.NewContactCommandService(contactRepo, srv.contentCache)

	srv.adminPractice = adminapp.NewPracticeService(practiceRepo, images, srv.contentCache, cfg.ServerLog)
	srv.adminCatalog = adminapp.NewCatalogService(serviceRepo, srv.contentCache)
	srv.adminTestim = adminapp.NewTestimonialService(testimonialRepo, srv.contentCache)
	srv.adminGallery = adminapp.NewGalleryService(galleryRepo, images, srv.contentCache, cfg.ServerLog)
	srv.adminCarousel = adminapp.NewCarouselService(carouselRepo, images, srv.contentCache, cfg.ServerLog)
	srv.adminExcluded = adminapp.NewExcludedPracticeService(excludedRepo, srv.contentCache)
	srv.adminContacts = adminapp.NewContactService(contactRepo, srv.contentCache)
	srv.auth = adminapp.NewAuthService(credentialRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenTTL)
	srv.credentials = credentialRepo

	return srv
}
