package storage

import (
	"context"
	"fmt"

	apperrors "pc-build-tracker-backend/internal/errors"

	"github.com/google/uuid"
)

// ImageStore persists build images and hands back an opaque reference
type ImageStore interface {
	StoreImage(ctx context.Context, data []byte, contentType string) (string, error)
	ReleaseImage(ctx context.Context, ref string) error
}

// DefaultMaxImageBytes is used when no limit is configured
const DefaultMaxImageBytes int64 = 5 * 1024 * 1024

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ValidateImage checks the content type and size of an upload
func ValidateImage(data []byte, contentType string, maxBytes int64) error {
	if _, ok := allowedContentTypes[contentType]; !ok {
		return apperrors.ErrUnsupportedImage
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	if len(data) == 0 {
		return apperrors.NewValidationError("image", "must not be empty")
	}
	if int64(len(data)) > maxBytes {
		return apperrors.ErrImageTooLarge
	}
	return nil
}

func newImageKey(contentType string) string {
	return fmt.Sprintf("builds/%s%s", uuid.NewString(), allowedContentTypes[contentType])
}

// Image store kinds accepted by NewImageStore
const (
	KindMemory = "memory"
	KindS3     = "s3"
)

// NewImageStore builds the image store selected by kind
func NewImageStore(kind string, cfg S3Config) (ImageStore, error) {
	switch kind {
	case KindMemory, "":
		return NewMemoryImageStore(cfg.MaxBytes), nil
	case KindS3:
		return NewS3ImageStore(cfg)
	default:
		return nil, fmt.Errorf("unsupported image store %q", kind)
	}
}
