package media

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damemahigan/site-services/api/internal/public/domain"
)

type fakePutObject struct {
	err  error
	last *s3.PutObjectInput
}

func (f *fakePutObject) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.last = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func pngDataURL(t *testing.T, payload string) string {
	t.Helper()
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestMaterializePassesThroughHostedURL(t *testing.T) {
	u := NewWithClient(&fakePutObject{}, "media", "https://cdn.damemahigan.com")

	url, err := u.Materialize(context.Background(), "https://example.com/img.jpg", "practices")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/img.jpg", url)
}

func TestMaterializeUploadsInlineImage(t *testing.T) {
	client := &fakePutObject{}
	u := NewWithClient(client, "media", "https://cdn.damemahigan.com/")

	url, err := u.Materialize(context.Background(), pngDataURL(t, "fake-png-bytes"), "gallery")
	require.NoError(t, err)

	require.NotNil(t, client.last)
	assert.Equal(t, "media", *client.last.Bucket)
	assert.Equal(t, "image/png", *client.last.ContentType)
	assert.True(t, strings.HasPrefix(*client.last.Key, "gallery/"))
	assert.True(t, strings.HasSuffix(*client.last.Key, ".png"))

	body, err := io.ReadAll(client.last.Body)
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(body))

	assert.Equal(t, "https://cdn.damemahigan.com/media/"+*client.last.Key, url)
}

func TestMaterializeGeneratesUniqueKeys(t *testing.T) {
	client := &fakePutObject{}
	u := NewWithClient(client, "media", "https://cdn.damemahigan.com")

	first, err := u.Materialize(context.Background(), pngDataURL(t, "a"), "carousel")
	require.NoError(t, err)
	second, err := u.Materialize(context.Background(), pngDataURL(t, "a"), "carousel")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestMaterializeWrapsUploadFailure(t *testing.T) {
	client := &fakePutObject{err: errors.New("bucket gone")}
	u := NewWithClient(client, "media", "https://cdn.damemahigan.com")

	_, err := u.Materialize(context.Background(), pngDataURL(t, "x"), "practices")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpload)
}

func TestMaterializeRejectsMalformedDataURL(t *testing.T) {
	u := NewWithClient(&fakePutObject{}, "media", "https://cdn.damemahigan.com")

	_, err := u.Materialize(context.Background(), "data:image/png;base64", "practices")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpload)

	_, err = u.Materialize(context.Background(), "data:image/png;base64,!!!", "practices")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpload)
}

func TestIsDataURL(t *testing.T) {
	assert.True(t, IsDataURL("data:image/jpeg;base64,abcd"))
	assert.False(t, IsDataURL("https://example.com/a.jpg"))
	assert.False(t, IsDataURL("/relative/path.png"))
}
