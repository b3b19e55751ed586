package repository

import (
	"context"
	"errors"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
)

// ErrStateNotFound returned by Get when no document exists for the key
var ErrStateNotFound = errors.New("state not found")

// StateRepository per-conversation document store
type StateRepository interface {
	// Get loads the state document for the conversation key
	Get(ctx context.Context, key string) (*entity.UserState, error)

	// Set replaces the state document for the conversation key
	Set(ctx context.Context, key string, state entity.UserState) error

	// Delete removes the state document
	Delete(ctx context.Context, key string) error

	// Flush persists buffered writes and releases resources
	Flush(ctx context.Context) error
}
