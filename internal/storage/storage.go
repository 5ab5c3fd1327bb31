package storage

import (
	"context"
	"fmt"

	"foodgram-backend/internal/config"
)

// Backend names accepted by IMAGE_STORAGE
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

// ImageStore persists recipe images. Save returns an opaque reference that is
// stored on the recipe; URL turns that reference into the public image_url.
type ImageStore interface {
	Save(ctx context.Context, img *Image) (string, error)
	Delete(ctx context.Context, ref string) error
	URL(ref string) string
}

// New builds the image store selected by the configuration
func New(ctx context.Context, cfg *config.Config) (ImageStore, error) {
	switch cfg.ImageStorage {
	case BackendLocal, "":
		return NewLocalImageStore(cfg.MediaRoot, cfg.MediaBaseURL, defaultKeyPrefix), nil
	case BackendS3:
		return NewS3ImageStore(ctx, S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
			KeyPrefix: cfg.S3KeyPrefix,
		})
	default:
		return nil, fmt.Errorf("unsupported image storage %q", cfg.ImageStorage)
	}
}
