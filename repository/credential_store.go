package repository

import (
	"sync"

	"github.com/apimatic/paypal-sample-app/models"
)

// CredentialStore holds the single process-wide set of PayPal credentials.
type CredentialStore interface {
	// Get returns a copy of the stored credentials, or false when setup
	// has not run yet.
	Get() (models.Credentials, bool)
	// Set replaces the stored credentials.
	Set(creds models.Credentials)
}

type memoryCredentialStore struct {
	mu    sync.RWMutex
	creds *models.Credentials
}

// NewMemoryCredentialStore creates an empty in-memory credential store.
func NewMemoryCredentialStore() CredentialStore {
	return &memoryCredentialStore{}
}

func (s *memoryCredentialStore) Get() (models.Credentials, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.creds == nil {
		return models.Credentials{}, false
	}
	return *s.creds, true
}

func (s *memoryCredentialStore) Set(creds models.Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = &creds
}
