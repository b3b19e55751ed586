package storage

import (
	"context"
	"sync"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/domain/repository"
)

type memoryStateRepository struct {
	mu     sync.RWMutex
	states map[string]entity.UserState
}

// NewMemoryStateRepository in-memory state store, lost on restart
func NewMemoryStateRepository() repository.StateRepository {
	return &memoryStateRepository{
		states: make(map[string]entity.UserState),
	}
}

// Get returns a copy of the stored document
func (m *memoryStateRepository) Get(ctx context.Context, key string) (*entity.UserState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, exists := m.states[key]
	if !exists {
		return nil, repository.ErrStateNotFound
	}
	return &state, nil
}

// Set replaces the document
func (m *memoryStateRepository) Set(ctx context.Context, key string, state entity.UserState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[key] = state
	return nil
}

// Delete removes the document
func (m *memoryStateRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, key)
	return nil
}

// Flush nothing is buffered
func (m *memoryStateRepository) Flush(ctx context.Context) error {
	return nil
}
