package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage abstracts the object store holding amenity icons and listing images.
type Storage interface {
	// Save stores an object under key.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves an object.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes an object. Missing objects are not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether the object is present.
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns the public URL for an object.
	GetURL(ctx context.Context, key string) (string, error)

	// GetSignedURL returns a temporary signed URL for private objects.
	GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// GetSize returns the object size in bytes.
	GetSize(ctx context.Context, key string) (int64, error)
}

// Config selects and configures a backend.
type Config struct {
	Type      string // local, s3
	BasePath  string // local: directory root
	BaseURL   string // public URL base
	Bucket    string // s3
	Region    string // s3
	AccessKey string // s3
	SecretKey string // s3
	Endpoint  string // s3: custom endpoint for R2 and other compatibles
}

// NewStorage builds the backend named by cfg.Type.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
