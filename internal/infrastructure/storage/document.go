package storage

import (
	"encoding/json"
	"fmt"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
)

// encodeState serializes the per-conversation document
func encodeState(state entity.UserState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// decodeState parses a stored document. Half-filled preferences are dropped.
func decodeState(data []byte) (*entity.UserState, error) {
	var state entity.UserState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	state.Preferences.Normalize()
	return &state, nil
}
