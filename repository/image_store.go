package repository

import (
	"sync"

	"github.com/apimatic/paypal-sample-app/models"
	"github.com/google/uuid"
)

// ImageStore keeps uploaded product images in process memory; like every
// other container here, contents are lost on restart.
type ImageStore interface {
	// Save stores the image bytes and returns the assigned image id.
	Save(contentType string, data []byte) string
	FindByID(id string) (*models.StoredImage, bool)
}

type memoryImageStore struct {
	mu     sync.RWMutex
	images map[string]models.StoredImage
}

// NewMemoryImageStore creates an empty in-memory image store.
func NewMemoryImageStore() ImageStore {
	return &memoryImageStore{
		images: make(map[string]models.StoredImage),
	}
}

func (s *memoryImageStore) Save(contentType string, data []byte) string {
	img := models.StoredImage{
		ID:          uuid.NewString(),
		ContentType: contentType,
		Data:        data,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[img.ID] = img
	return img.ID
}

func (s *memoryImageStore) FindByID(id string) (*models.StoredImage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[id]
	if !ok {
		return nil, false
	}
	return &img, true
}
