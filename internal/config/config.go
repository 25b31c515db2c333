package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// JWTConfig defines the issuer/secret pair used by the admin gate.
type JWTConfig struct {
	Issuer   string
	Secret   []byte
	TokenTTL time.Duration
}

// MediaConfig holds the S3-compatible object storage settings used to host
// uploaded images.
type MediaConfig struct {
	Region        string
	AccessKey     string
	SecretKey     string
	Endpoint      string
	Bucket        string
	PublicBaseURL string
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                         string
	MongoURI                     string
	MongoDatabase                string
	PracticeCollection           string
	TestimonialCollection        string
	GalleryCollection            string
	CarouselCollection           string
	ServiceCollection            string
	ExcludedPracticeCollection   string
	ContactFormCollection        string
	AdminSettingsCollection      string
	FailedNotificationCollection string
	Timeout                      time.Duration
	ServerLog                    *log.Logger
	JWT                          JWTConfig
	Media                        MediaConfig
	MessengerEndpoint            string
	MessengerDestination         string
	MessengerTimeout             time.Duration
	AdminContactBaseURL          string
	AllowedOrigins               []string
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	jwtSecret := strings.TrimSpace(os.Getenv("ADMIN_JWT_SECRET"))
	if jwtSecret == "" {
		log.Fatal("ADMIN_JWT_SECRET must be configured")
	}
	tokenTTL := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("ADMIN_TOKEN_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			tokenTTL = parsed
		}
	}

	messengerEndpoint := strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_URL"))
	if messengerEndpoint == "" {
		messengerEndpoint = "http://messenger-gateway:3000"
	}
	messengerTimeout := 3 * time.Second
	if raw := strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			messengerTimeout = parsed
		}
	}

	cfg := Config{
		Addr:                         envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:                     envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:                envOrDefault("MONGO_DB", "damemahigan"),
		PracticeCollection:           envOrDefault("PRACTICE_COLLECTION", "practices"),
		TestimonialCollection:        envOrDefault("TESTIMONIAL_COLLECTION", "testimonials"),
		GalleryCollection:            envOrDefault("GALLERY_COLLECTION", "gallery_images"),
		CarouselCollection:           envOrDefault("CAROUSEL_COLLECTION", "carousel_images"),
		ServiceCollection:            envOrDefault("SERVICE_COLLECTION", "services"),
		ExcludedPracticeCollection:   envOrDefault("EXCLUDED_PRACTICE_COLLECTION", "excluded_practices"),
		ContactFormCollection:        envOrDefault("CONTACT_FORM_COLLECTION", "contact_forms"),
		AdminSettingsCollection:      envOrDefault("ADMIN_SETTINGS_COLLECTION", "admin_settings"),
		FailedNotificationCollection: envOrDefault("FAILED_NOTIFICATION_COLLECTION", "failed_notifications"),
		Timeout:                      timeout,
		ServerLog:                    log.New(os.Stdout, "[dame-mahigan-api] ", log.LstdFlags|log.Lshortfile),
		JWT: JWTConfig{
			Issuer:   envOrDefault("ADMIN_JWT_ISSUER", "dame-mahigan-api"),
			Secret:   []byte(jwtSecret),
			TokenTTL: tokenTTL,
		},
		Media: MediaConfig{
			Region:        envOrDefault("MEDIA_S3_REGION", "auto"),
			AccessKey:     strings.TrimSpace(os.Getenv("MEDIA_S3_ACCESS_KEY")),
			SecretKey:     strings.TrimSpace(os.Getenv("MEDIA_S3_SECRET_KEY")),
			Endpoint:      strings.TrimSpace(os.Getenv("MEDIA_S3_ENDPOINT")),
			Bucket:        envOrDefault("MEDIA_S3_BUCKET", "damemahigan-media"),
			PublicBaseURL: strings.TrimSpace(os.Getenv("MEDIA_BASE_URL")),
		},
		MessengerEndpoint:    messengerEndpoint,
		MessengerDestination: strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_DESTINATION")),
		MessengerTimeout:     messengerTimeout,
		AdminContactBaseURL:  strings.TrimSpace(os.Getenv("ADMIN_CONTACT_BASE_URL")),
		AllowedOrigins:       parseList("API_ALLOWED_ORIGINS", []string{"*"}),
	}

	cfg.ServerLog.Printf("loaded config: db=%q messengerEndpoint=%q destination=%q", cfg.MongoDatabase, messengerEndpoint, cfg.MessengerDestination)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
