package storage

import (
	"context"
	"sync"
)

// StoredImage is an image held by MemoryImageStore
type StoredImage struct {
	Data        []byte
	ContentType string
}

// MemoryImageStore keeps images in process memory. Used in development and tests.
type MemoryImageStore struct {
	mu       sync.RWMutex
	images   map[string]StoredImage
	maxBytes int64
}

// NewMemoryImageStore creates an empty in-memory image store
func NewMemoryImageStore(maxBytes int64) *MemoryImageStore {
	return &MemoryImageStore{
		images:   make(map[string]StoredImage),
		maxBytes: maxBytes,
	}
}

func (s *MemoryImageStore) StoreImage(ctx context.Context, data []byte, contentType string) (string, error) {
	if err := ValidateImage(data, contentType, s.maxBytes); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := newImageKey(contentType)
	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	s.images[key] = StoredImage{Data: buf, ContentType: contentType}
	s.mu.Unlock()

	return key, nil
}

// ReleaseImage removes the image. Unknown references are ignored.
func (s *MemoryImageStore) ReleaseImage(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.images, ref)
	s.mu.Unlock()
	return nil
}

// Get returns a stored image
func (s *MemoryImageStore) Get(ref string) (StoredImage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[ref]
	return img, ok
}

// Len returns the number of stored images
func (s *MemoryImageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}
