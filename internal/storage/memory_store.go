package storage

import (
	"context"
	"sync"

	"github.com/brainbox-app/brainbox/internal/model"
)

// MemoryStore is an in-memory StateStore used by tests and by --no-persist
// runs where nothing should touch disk.
type MemoryStore struct {
	mu         sync.Mutex
	credential string
	hasCred    bool
	profile    model.Profile
	hasProfile bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) SaveCredential(_ context.Context, credential string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = credential
	m.hasCred = true
	return nil
}

func (m *MemoryStore) LoadCredential(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasCred {
		return "", ErrNotFound
	}
	return m.credential, nil
}

func (m *MemoryStore) DeleteCredential(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = ""
	m.hasCred = false
	return nil
}

func (m *MemoryStore) SaveProfile(_ context.Context, profile model.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = profile
	m.hasProfile = true
	return nil
}

func (m *MemoryStore) LoadProfile(_ context.Context) (model.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasProfile {
		return model.Profile{}, ErrNotFound
	}
	return m.profile, nil
}

func (m *MemoryStore) DeleteProfile(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = model.Profile{}
	m.hasProfile = false
	return nil
}
