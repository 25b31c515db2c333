package public

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	publicapp "github.com/damemahigan/site-services/api/internal/public/application"
	"github.com/damemahigan/site-services/api/internal/public/domain"
)

type stubContentQueries struct {
	practices []domain.Practice
	services  []domain.Service
}

func (s *stubContentQueries) Practices(context.Context) []domain.Practice { return s.practices }
func (s *stubContentQueries) PracticeByID(_ context.Context, id string) (*domain.Practice, error) {
	for _, p := range s.practices {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}
func (s *stubContentQueries) Testimonials(context.Context) []domain.Testimonial { return nil }
func (s *stubContentQueries) Services(context.Context) []domain.Service         { return s.services }
func (s *stubContentQueries) GalleryImages(context.Context) []domain.GalleryImage {
	return nil
}
func (s *stubContentQueries) CarouselImages(context.Context) []domain.CarouselImage {
	return nil
}
func (s *stubContentQueries) ExcludedPractices(context.Context) []domain.ExcludedPractice {
	return nil
}

type stubContactCommands struct {
	submitted []publicapp.SubmitContactFormCommand
}

func (s *stubContactCommands) Submit(_ context.Context, cmd publicapp.SubmitContactFormCommand) (*domain.ContactForm, error) {
	s.submitted = append(s.submitted, cmd)
	return &domain.ContactForm{ID: "c1", NameOrPseudo: cmd.NameOrPseudo}, nil
}

func newTestRouter(content publicapp.ContentQueryService, contacts publicapp.ContactCommandService) http.Handler {
	h := NewHandler(Config{
		Logger:     log.New(io.Discard, "", 0),
		Content:    content,
		Contacts:   contacts,
		HTTPClient: &http.Client{},
	})
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestPracticeListEndpoint(t *testing.T) {
	content := &stubContentQueries{practices: []domain.Practice{{ID: "p1", Title: "Shibari"}}}
	router := newTestRouter(content, &stubContactCommands{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/practices", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Shibari"`)
}

func TestPracticeDetailEndpointNotFound(t *testing.T) {
	router := newTestRouter(&stubContentQueries{}, &stubContactCommands{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/practices/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pratique introuvable")
}

func TestContactCreateEndpointRejectsMissingFields(t *testing.T) {
	contacts := &stubContactCommands{}
	router := newTestRouter(&stubContentQueries{}, contacts)

	body := `{"nameOrPseudo":"Alex"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, contacts.submitted, "an invalid submission must not reach the service")
}

func TestContactCreateEndpointAcceptsCompleteSubmission(t *testing.T) {
	contacts := &stubContactCommands{}
	router := newTestRouter(&stubContentQueries{}, contacts)

	body := `{
		"nameOrPseudo": "Alex",
		"age": "32",
		"height": "178",
		"weight": "70",
		"experienceLevel": "Débutant",
		"desiredPractices": "Cordes",
		"limits": "Pas de marques",
		"email": "alex@example.com",
		"phone": "+33600000000",
		"contactPreference": "email",
		"sessionDuration": "1h"
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, contacts.submitted, 1)
	assert.Equal(t, "Alex", contacts.submitted[0].NameOrPseudo)
	assert.Contains(t, rec.Body.String(), `"c1"`)
}
