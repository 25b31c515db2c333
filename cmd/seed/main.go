package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// The seed is idempotent: defaults are only inserted into collections that
// are still empty, so running it against a live database is safe.

type seedOptions struct {
	envName         string
	dropCollections bool
	withSamples     bool
}

type collections struct {
	practices         string
	testimonials      string
	gallery           string
	carousel          string
	services          string
	excludedPractices string
	contactForms      string
	adminSettings     string
}

type serviceDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Price       string             `bson:"price"`
	Description string             `bson:"description,omitempty"`
	Position    int                `bson:"position"`
	CreatedAt   time.Time          `bson:"created_at"`
}

type excludedPracticeDocument struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`
}

type practiceDocument struct {
	ID              primitive.ObjectID `bson:"_id"`
	Title           string             `bson:"title"`
	Description     string             `bson:"description"`
	ImageURL        string             `bson:"image_url"`
	LongDescription string             `bson:"long_description,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

type testimonialDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Content   string             `bson:"content"`
	Date      string             `bson:"date"`
	Response  string             `bson:"response,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

const defaultAdminPassword = "admin123"

var defaultServices = []serviceDocument{
	{Name: "Lecture érotique", Price: "100€", Description: "30 à 45 minutes", Position: 0},
	{Name: "Séance 1h", Price: "150€", Description: "Par séance", Position: 1},
	{Name: "Séance 2h", Price: "250€", Description: "Par séance", Position: 2},
	{Name: "Autre format", Price: "Sur devis", Description: "Contactez-nous pour plus d'informations", Position: 3},
}

var defaultExcludedPractices = []string{
	"Uro",
	"Scato",
	"Age play",
	"Fellation",
	"Masturbation",
	"Accès à mon corps/intimité",
	"Nudité",
	"Kidnapping",
}

var samplePractices = []practiceDocument{
	{
		Title:           "Shibari",
		Description:     "Cordes japonaises, du décoratif à la suspension.",
		ImageURL:        "https://dummyjson.com/image/600x400/111111/f5f5f5/?text=Shibari",
		LongDescription: "Travail des cordes progressif, adapté au niveau et aux limites de chacun.",
	},
	{
		Title:       "Impact",
		Description: "Fessée, flogger, canne : du sensoriel au soutenu.",
		ImageURL:    "https://dummyjson.com/image/600x400/222222/f5f5f5/?text=Impact",
	},
	{
		Title:       "Contrôle mental",
		Description: "Jeux de pouvoir, protocoles et obéissance.",
		ImageURL:    "https://dummyjson.com/image/600x400/333333/f5f5f5/?text=Controle",
	},
}

var sampleTestimonials = []testimonialDocument{
	{
		Content:  "Une première séance menée avec beaucoup d'écoute. Je recommande.",
		Date:     "2025-06-14",
		Response: "Merci pour votre confiance.",
	},
	{
		Content: "Cadre superbe et pratiques parfaitement respectées.",
		Date:    "2025-07-02",
	},
}

func main() {
	opts := parseFlags()

	if err := loadEnvFiles(opts.envName); err != nil {
		log.Fatalf("failed to load env files: %v", err)
	}

	cfg := collections{
		practices:         envOrDefault("PRACTICE_COLLECTION", "practices"),
		testimonials:      envOrDefault("TESTIMONIAL_COLLECTION", "testimonials"),
		gallery:           envOrDefault("GALLERY_COLLECTION", "gallery_images"),
		carousel:          envOrDefault("CAROUSEL_COLLECTION", "carousel_images"),
		services:          envOrDefault("SERVICE_COLLECTION", "services"),
		excludedPractices: envOrDefault("EXCLUDED_PRACTICE_COLLECTION", "excluded_practices"),
		contactForms:      envOrDefault("CONTACT_FORM_COLLECTION", "contact_forms"),
		adminSettings:     envOrDefault("ADMIN_SETTINGS_COLLECTION", "admin_settings"),
	}

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "damemahigan")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(dbName)

	if opts.dropCollections {
		dropCollections(ctx, db, cfg)
		log.Printf("dropped existing collections")
	}

	if err := ensureIndexes(ctx, db, cfg); err != nil {
		log.Fatalf("index creation failed: %v", err)
	}

	services, err := seedServices(ctx, db.Collection(cfg.services))
	if err != nil {
		log.Fatalf("service seeding failed: %v", err)
	}
	excluded, err := seedExcludedPractices(ctx, db.Collection(cfg.excludedPractices))
	if err != nil {
		log.Fatalf("excluded practice seeding failed: %v", err)
	}
	credentialSeeded, err := seedCredential(ctx, db.Collection(cfg.adminSettings))
	if err != nil {
		log.Fatalf("admin credential seeding failed: %v", err)
	}

	practices, testimonials := 0, 0
	if opts.withSamples {
		practices, err = seedSamplePractices(ctx, db.Collection(cfg.practices))
		if err != nil {
			log.Fatalf("sample practice seeding failed: %v", err)
		}
		testimonials, err = seedSampleTestimonials(ctx, db.Collection(cfg.testimonials))
		if err != nil {
			log.Fatalf("sample testimonial seeding failed: %v", err)
		}
	}

	log.Printf("seed done: services=%d excludedPractices=%d credential=%t practices=%d testimonials=%d",
		services, excluded, credentialSeeded, practices, testimonials)
	log.Printf("Mongo: %s / %s (env=%s)", mongoURI, dbName, opts.envName)
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.StringVar(&opts.envName, "env", "local", "env file name under backend/env (e.g. local, staging)")
	flag.BoolVar(&opts.dropCollections, "drop", false, "drop existing collections before seeding")
	flag.BoolVar(&opts.withSamples, "samples", false, "insert sample practices and testimonials for local development")
	flag.Parse()
	return opts
}

func loadEnvFiles(envName string) error {
	base := filepath.Clean(filepath.Join("..", "env"))
	files := []string{
		filepath.Join(base, "shared.env"),
		filepath.Join(base, fmt.Sprintf("%s.env", envName)),
	}
	for _, file := range files {
		if err := loadEnvFile(file); err != nil {
			return err
		}
	}
	return nil
}

func loadEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func dropCollections(ctx context.Context, db *mongo.Database, cfg collections) {
	for _, name := range []string{
		cfg.practices, cfg.testimonials, cfg.gallery, cfg.carousel,
		cfg.services, cfg.excludedPractices, cfg.contactForms, cfg.adminSettings,
	} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			log.Printf("WARN: dropping collection %s failed: %v", name, err)
		}
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database, cfg collections) error {
	if _, err := db.Collection(cfg.services).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "position", Value: 1}},
		Options: options.Index().SetName("idx_service_position"),
	}); err != nil {
		return err
	}

	if _, err := db.Collection(cfg.testimonials).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: -1}},
		Options: options.Index().SetName("idx_testimonial_date"),
	}); err != nil {
		return err
	}

	if _, err := db.Collection(cfg.contactForms).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("idx_contact_created"),
	}); err != nil {
		return err
	}

	// Collation strength 2 makes the unique name index case-insensitive,
	// backing up the application-level duplicate check.
	if _, err := db.Collection(cfg.excludedPractices).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetName("uniq_excluded_name").
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "fr", Strength: 2}),
	}); err != nil {
		return err
	}

	return nil
}

func seedServices(ctx context.Context, col *mongo.Collection) (int, error) {
	count, err := col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(defaultServices))
	for _, svc := range defaultServices {
		svc.ID = primitive.NewObjectID()
		svc.CreatedAt = now
		docs = append(docs, svc)
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return 0, err
	}
	return len(docs), nil
}

func seedExcludedPractices(ctx context.Context, col *mongo.Collection) (int, error) {
	count, err := col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(defaultExcludedPractices))
	for _, name := range defaultExcludedPractices {
		docs = append(docs, excludedPracticeDocument{
			ID:   primitive.NewObjectID(),
			Name: name,
		})
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return 0, err
	}
	return len(docs), nil
}

func seedCredential(ctx context.Context, col *mongo.Collection) (bool, error) {
	count, err := col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	_, err = col.InsertOne(ctx, bson.M{
		"password_hash": string(hash),
		"updated_at":    time.Now().UTC(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func seedSamplePractices(ctx context.Context, col *mongo.Collection) (int, error) {
	count, err := col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(samplePractices))
	for _, practice := range samplePractices {
		practice.ID = primitive.NewObjectID()
		practice.CreatedAt = now
		practice.UpdatedAt = now
		docs = append(docs, practice)
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return 0, err
	}
	return len(docs), nil
}

func seedSampleTestimonials(ctx context.Context, col *mongo.Collection) (int, error) {
	count, err := col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(sampleTestimonials))
	for _, testimonial := range sampleTestimonials {
		testimonial.ID = primitive.NewObjectID()
		testimonial.CreatedAt = now
		docs = append(docs, testimonial)
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return 0, err
	}
	return len(docs), nil
}
