// Package media materializes inline-encoded images into hosted objects on
// an S3-compatible bucket. Entity records store the resulting hosted URL,
// never the inline data.
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/damemahigan/site-services/api/internal/public/domain"
)

// Config carries the object-store connection settings.
type Config struct {
	Region        string
	AccessKey     string
	SecretKey     string
	Endpoint      string
	Bucket        string
	PublicBaseURL string
}

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader uploads decoded image bytes under per-collection folders.
type Uploader struct {
	client        putObjectAPI
	bucket        string
	publicBaseURL string
}

// New builds an Uploader against the configured S3-compatible endpoint
// (MinIO locally, S3 in production).
func New(ctx context.Context, cfg Config) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load object store config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	return NewWithClient(client, cfg.Bucket, cfg.PublicBaseURL), nil
}

// NewWithClient wires an Uploader around an existing S3 client.
func NewWithClient(client putObjectAPI, bucket, publicBaseURL string) *Uploader {
	return &Uploader{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Materialize turns an inline data-URL image into a hosted URL by uploading
// it under folder with a generated unique filename. A value that is already
// a hosted URL passes through unchanged. Failures wrap domain.ErrUpload;
// callers fall back to persisting the inline value.
func (u *Uploader) Materialize(ctx context.Context, value, folder string) (string, error) {
	if !IsDataURL(value) {
		return value, nil
	}

	mediaType, data, err := parseDataURL(value)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpload, err)
	}

	key := fmt.Sprintf("%s/%s%s", folder, uuid.New(), extensionFor(mediaType))
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mediaType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpload, err)
	}

	return fmt.Sprintf("%s/%s/%s", u.publicBaseURL, u.bucket, key), nil
}

// IsDataURL reports whether value is an inline-encoded image rather than a
// hosted URL.
func IsDataURL(value string) bool {
	return strings.HasPrefix(value, "data:")
}

func parseDataURL(value string) (mediaType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(value, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URL")
	}

	mediaType, encoding := meta, ""
	if m, e, ok := strings.Cut(meta, ";"); ok {
		mediaType, encoding = m, e
	}
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}

	if encoding == "base64" {
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, fmt.Errorf("decode base64 payload: %v", err)
		}
		return mediaType, data, nil
	}
	return mediaType, []byte(payload), nil
}

func extensionFor(mediaType string) string {
	switch mediaType {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
