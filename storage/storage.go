package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore is the object storage surface the application uses: write a
// blob, derive its public URL. The hosted store serves the files itself.
type ObjectStore interface {
	Put(ctx context.Context, bucket, path, contentType string, size int64, body io.Reader) (string, error)
	PublicURL(bucket, path string) string
}

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	// PublicURL overrides the base URL used for public links. When empty,
	// links point at the endpoint directly.
	PublicURL string
}

type minioStore struct {
	client  *minio.Client
	baseURL string
}

// NewMinioStore connects to an S3-compatible object store.
func NewMinioStore(cfg Config) (ObjectStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	baseURL := cfg.PublicURL
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	return &minioStore{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put uploads an object, overwriting any previous version at the same path,
// and returns its public URL.
func (s *minioStore) Put(ctx context.Context, bucket, path, contentType string, size int64, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, bucket, path, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s/%s: %w", bucket, path, err)
	}

	return s.PublicURL(bucket, path), nil
}

// PublicURL returns the public link for an object.
func (s *minioStore) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, bucket, path)
}
