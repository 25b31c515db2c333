package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoadsOnceThenServesCached(t *testing.T) {
	c := New()
	ctx := context.Background()

	var calls int32
	load := func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		return []string{"a", "b"}, nil
	}

	first, err := Load(ctx, c, KeyPractices, load)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, first)

	second, err := Load(ctx, c, KeyPractices, load)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestConcurrentReadsCoalesce(t *testing.T) {
	c := New()
	ctx := context.Background()

	var calls int32
	release := make(chan struct{})
	load := func(ctx context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 42, nil
	}

	const readers = 8
	var wg sync.WaitGroup
	results := make([]int, readers)
	errs := make([]error, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Load(ctx, c, KeyServices, load)
		}(i)
	}
	close(release)
	wg.Wait()

	for i := 0; i < readers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, 42, results[i])
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent identical reads must share one load")
}

func TestInvalidateForcesRefetch(t *testing.T) {
	c := New()
	ctx := context.Background()

	var calls int32
	load := func(ctx context.Context) (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	v, err := Load(ctx, c, KeyTestimonials, load)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	c.Invalidate(KeyTestimonials)

	v, err = Load(ctx, c, KeyTestimonials, load)
	require.NoError(t, err)
	assert.Equal(t, 2, v, "a read after invalidation must bypass the stale value")
}

func TestInvalidateDuringInFlightLoadIsNotLost(t *testing.T) {
	c := New()
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = Load(ctx, c, KeyPractices, func(ctx context.Context) (string, error) {
			close(started)
			<-release
			return "before", nil
		})
	}()

	// The mutation commits and invalidates while the list load is still
	// reading the pre-mutation state.
	<-started
	c.Invalidate(KeyPractices)
	close(release)
	<-done

	v, err := Load(ctx, c, KeyPractices, func(ctx context.Context) (string, error) {
		return "after", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "after", v, "the read after the mutation must re-fetch, not serve the in-flight result")
}

func TestFailedRefreshServesStaleValue(t *testing.T) {
	c := New()
	ctx := context.Background()

	v, err := Load(ctx, c, KeyGallery, func(ctx context.Context) (string, error) {
		return "cached", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "cached", v)

	c.Invalidate(KeyGallery)

	v, err = Load(ctx, c, KeyGallery, func(ctx context.Context) (string, error) {
		return "", errors.New("store down")
	})
	require.NoError(t, err, "a failed refresh must not clear the previous value")
	assert.Equal(t, "cached", v)
}

func TestFailedLoadWithoutPriorValueSurfacesError(t *testing.T) {
	c := New()
	ctx := context.Background()

	_, err := Load(ctx, c, KeyCarousel, func(ctx context.Context) (string, error) {
		return "", errors.New("store down")
	})
	require.Error(t, err)
}

func TestSubscribeRunsOnInvalidation(t *testing.T) {
	c := New()

	var got []string
	c.Subscribe(KeyExcludedPractices, func(key string) {
		got = append(got, key)
	})

	c.Invalidate(KeyExcludedPractices, KeyContactForms)
	c.Invalidate(KeyContactForms)

	assert.Equal(t, []string{KeyExcludedPractices}, got)
}

func TestPracticeKeyIsDistinctFromCollectionKey(t *testing.T) {
	assert.NotEqual(t, KeyPractices, PracticeKey("7"))
	assert.Equal(t, "practice:7", PracticeKey("7"))
}
