package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damemahigan/site-services/api/internal/cache"
	"github.com/damemahigan/site-services/api/internal/public/domain"
)

type fakePracticeRepo struct {
	practices []domain.Practice
	nextID    int
}

func (f *fakePracticeRepo) FindAll(context.Context) ([]domain.Practice, error) {
	out := make([]domain.Practice, len(f.practices))
	copy(out, f.practices)
	return out, nil
}

func (f *fakePracticeRepo) FindByID(_ context.Context, id string) (*domain.Practice, error) {
	for _, p := range f.practices {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePracticeRepo) Create(_ context.Context, practice *domain.Practice) error {
	f.nextID++
	practice.ID = fmt.Sprintf("p%d", f.nextID)
	f.practices = append(f.practices, *practice)
	return nil
}

func (f *fakePracticeRepo) Update(_ context.Context, practice domain.Practice) error {
	for i, p := range f.practices {
		if p.ID == practice.ID {
			f.practices[i] = practice
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakePracticeRepo) Delete(_ context.Context, id string) error {
	for i, p := range f.practices {
		if p.ID == id {
			f.practices = append(f.practices[:i], f.practices[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeImageStore struct {
	err     error
	uploads int
}

func (f *fakeImageStore) Materialize(_ context.Context, value, folder string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads++
	return "https://media.test/" + folder + "/hosted", nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestPracticeServiceCollapseDuplicates(t *testing.T) {
	repo := &fakePracticeRepo{practices: []domain.Practice{
		{ID: "p1", Title: "Corde"},
		{ID: "p2", Title: "corde "},
		{ID: "p3", Title: "Impact"},
		{ID: "p4", Title: "CORDE"},
		{ID: "p5", Title: "impact"},
	}}
	svc := NewPracticeService(repo, &fakeImageStore{}, cache.New(), discardLogger())

	removed, err := svc.CollapseDuplicates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	remaining, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, "p1", remaining[0].ID, "the first occurrence survives")
	assert.Equal(t, "p3", remaining[1].ID)
}

func TestPracticeServiceCollapseDuplicatesIdempotent(t *testing.T) {
	repo := &fakePracticeRepo{practices: []domain.Practice{
		{ID: "p1", Title: "Corde"},
		{ID: "p2", Title: "corde"},
	}}
	svc := NewPracticeService(repo, &fakeImageStore{}, cache.New(), discardLogger())
	ctx := context.Background()

	removed, err := svc.CollapseDuplicates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	removed, err = svc.CollapseDuplicates(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed, "a second collapse finds nothing to remove")
}

func TestPracticeServiceCreateMaterializesImage(t *testing.T) {
	repo := &fakePracticeRepo{}
	images := &fakeImageStore{}
	svc := NewPracticeService(repo, images, cache.New(), discardLogger())

	created, err := svc.Create(context.Background(), UpsertPracticeCommand{
		Title:    "Corde",
		ImageURL: "data:image/png;base64,aGVsbG8=",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://media.test/practices/hosted", created.ImageURL)
	assert.Equal(t, 1, images.uploads)
}

func TestPracticeServiceCreateKeepsInlineValueOnUploadFailure(t *testing.T) {
	repo := &fakePracticeRepo{}
	images := &fakeImageStore{err: errors.New("bucket down")}
	svc := NewPracticeService(repo, images, cache.New(), discardLogger())

	inline := "data:image/png;base64,aGVsbG8="
	created, err := svc.Create(context.Background(), UpsertPracticeCommand{Title: "Corde", ImageURL: inline})
	require.NoError(t, err, "a failed upload must not break the write")
	assert.Equal(t, inline, created.ImageURL)
}

func TestPracticeServiceUpdateInvalidatesDetailKey(t *testing.T) {
	repo := &fakePracticeRepo{practices: []domain.Practice{{ID: "p1", Title: "Corde"}}}
	c := cache.New()
	svc := NewPracticeService(repo, &fakeImageStore{}, c, discardLogger())

	var invalidated []string
	c.Subscribe(cache.PracticeKey("p1"), func(key string) {
		invalidated = append(invalidated, key)
	})

	require.NoError(t, svc.Update(context.Background(), "p1", UpsertPracticeCommand{Title: "Corde fine"}))
	assert.Equal(t, []string{cache.PracticeKey("p1")}, invalidated)
}
