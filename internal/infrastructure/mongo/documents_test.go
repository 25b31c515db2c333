package mongo

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/damemahigan/site-services/api/internal/public/domain"
)

func TestPracticeMappingRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	original := domain.Practice{
		ID:              primitive.NewObjectID().Hex(),
		Title:           "Shibari",
		Description:     "Cordes et suspension",
		ImageURL:        "https://media.damemahigan.com/practices/shibari.jpg",
		LongDescription: "Présentation détaillée",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	doc, err := newPracticeDocument(original)
	require.NoError(t, err)
	assert.Equal(t, original, mapPractice(doc))
}

func TestContactFormMappingRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	original := domain.ContactForm{
		ID:                  primitive.NewObjectID().Hex(),
		NameOrPseudo:        "Alex",
		Age:                 "32",
		Height:              "178",
		Weight:              "70",
		ExperienceLevel:     "Débutant",
		DesiredPractices:    "Impact, cordes",
		Limits:              "Pas de marques visibles",
		FetishSpecification: "",
		Email:               "alex@example.com",
		Phone:               "+33 6 00 00 00 00",
		ContactPreference:   "email",
		SessionDuration:     "2h",
		CreatedAt:           now,
	}

	doc, err := newContactFormDocument(original)
	require.NoError(t, err)
	assert.Equal(t, original, mapContactForm(doc))
}

func TestNewDocumentAssignsIDWhenEmpty(t *testing.T) {
	doc, err := newServiceDocument(domain.Service{Name: "Séance 1h", Price: "150€"})
	require.NoError(t, err)
	assert.False(t, doc.ID.IsZero(), "an empty entity id gets a fresh object id")
}

func TestNewDocumentRejectsMalformedID(t *testing.T) {
	_, err := newServiceDocument(domain.Service{ID: "not-hex"})
	assert.ErrorIs(t, err, domain.ErrStoreQuery)
}

func TestParseIDMapsMalformedToNotFound(t *testing.T) {
	_, err := parseID("not-hex")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	id := primitive.NewObjectID()
	parsed, err := parseID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestWrapReadErrClassification(t *testing.T) {
	assert.NoError(t, wrapReadErr(nil))
	assert.ErrorIs(t, wrapReadErr(mongo.ErrNoDocuments), domain.ErrNotFound)
	assert.ErrorIs(t, wrapReadErr(mongo.ErrClientDisconnected), domain.ErrStoreUnavailable)
	assert.ErrorIs(t, wrapReadErr(errors.New("cursor decode failed")), domain.ErrStoreQuery)
}

func TestWrapWriteErrClassification(t *testing.T) {
	assert.NoError(t, wrapWriteErr(nil))
	assert.ErrorIs(t, wrapWriteErr(mongo.ErrClientDisconnected), domain.ErrStoreUnavailable)
	assert.ErrorIs(t, wrapWriteErr(errors.New("duplicate key")), domain.ErrStoreWrite)
}
