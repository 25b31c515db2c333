package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damemahigan/site-services/api/internal/cache"
	"github.com/damemahigan/site-services/api/internal/public/domain"
)

type fakeExcludedRepo struct {
	practices []domain.ExcludedPractice
	creates   int
}

func (f *fakeExcludedRepo) FindAll(context.Context) ([]domain.ExcludedPractice, error) {
	out := make([]domain.ExcludedPractice, len(f.practices))
	copy(out, f.practices)
	return out, nil
}

func (f *fakeExcludedRepo) Create(_ context.Context, practice *domain.ExcludedPractice) error {
	f.creates++
	practice.ID = "e-new"
	f.practices = append(f.practices, *practice)
	return nil
}

func (f *fakeExcludedRepo) Delete(_ context.Context, id string) error {
	for i, p := range f.practices {
		if p.ID == id {
			f.practices = append(f.practices[:i], f.practices[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func TestExcludedPracticeServiceRejectsDuplicates(t *testing.T) {
	repo := &fakeExcludedRepo{practices: []domain.ExcludedPractice{{ID: "e1", Name: "Uro"}}}
	svc := NewExcludedPracticeService(repo, cache.New())

	_, err := svc.Add(context.Background(), "  uro ")
	assert.ErrorIs(t, err, ErrDuplicateExcludedPractice)
	assert.Zero(t, repo.creates, "a duplicate must never reach the gateway")
}

func TestExcludedPracticeServiceAddTrimsName(t *testing.T) {
	repo := &fakeExcludedRepo{}
	svc := NewExcludedPracticeService(repo, cache.New())

	added, err := svc.Add(context.Background(), "  Kidnapping ")
	require.NoError(t, err)
	assert.Equal(t, "Kidnapping", added.Name)
}

type fakeTestimonialModRepo struct {
	responses map[string]string
	deleted   []string
}

func (f *fakeTestimonialModRepo) UpdateResponse(_ context.Context, id, response string) error {
	if f.responses == nil {
		f.responses = map[string]string{}
	}
	f.responses[id] = response
	return nil
}

func (f *fakeTestimonialModRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestTestimonialServiceRespondInvalidatesCache(t *testing.T) {
	repo := &fakeTestimonialModRepo{}
	c := cache.New()
	svc := NewTestimonialService(repo, c)

	var invalidated []string
	c.Subscribe(cache.KeyTestimonials, func(key string) {
		invalidated = append(invalidated, key)
	})

	require.NoError(t, svc.Respond(context.Background(), "t1", "Merci pour votre retour."))
	assert.Equal(t, "Merci pour votre retour.", repo.responses["t1"])
	assert.Equal(t, []string{cache.KeyTestimonials}, invalidated)
}

type fakeContactRepo struct {
	forms []domain.ContactForm
}

func (f *fakeContactRepo) FindAll(context.Context) ([]domain.ContactForm, error) {
	out := make([]domain.ContactForm, len(f.forms))
	copy(out, f.forms)
	return out, nil
}

func (f *fakeContactRepo) FindByID(_ context.Context, id string) (*domain.ContactForm, error) {
	for _, form := range f.forms {
		if form.ID == id {
			return &form, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeContactRepo) Delete(_ context.Context, id string) error {
	for i, form := range f.forms {
		if form.ID == id {
			f.forms = append(f.forms[:i], f.forms[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func TestContactServiceDeleteRefreshesList(t *testing.T) {
	repo := &fakeContactRepo{forms: []domain.ContactForm{
		{ID: "c1", NameOrPseudo: "Alex"},
		{ID: "c2", NameOrPseudo: "Sam"},
	}}
	svc := NewContactService(repo, cache.New())
	ctx := context.Background()

	forms, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, forms, 2)

	require.NoError(t, svc.Delete(ctx, "c1"))

	forms, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, forms, 1, "the cached list must not survive a delete")
	assert.Equal(t, "c2", forms[0].ID)
}

func TestContactServiceDetailMissing(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{}, cache.New())

	_, err := svc.Detail(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
