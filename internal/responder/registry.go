package responder

import (
	"github.com/yourusername/dram-rate-bot/internal/catalog"
	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/domain/repository"
)

// Registry responders in fixed priority order
type Registry struct {
	responders []Responder
}

// NewRegistry creates a registry probing responders in the given order
func NewRegistry(responders ...Responder) *Registry {
	return &Registry{responders: responders}
}

// Default registry: change preference, contact, exchange rate, converter,
// then help which accepts everything.
func Default(source repository.RateSource, cat *catalog.Catalog) *Registry {
	return NewRegistry(
		ChangePreferenceResponder{},
		ContactResponder{},
		NewExchangeRateResponder(source, cat),
		NewConvertResponder(source, cat),
		HelpResponder{},
	)
}

// Find returns the first responder accepting msg
func (r *Registry) Find(msg entity.RecognizedMessage, channel string) (Responder, bool) {
	for _, resp := range r.responders {
		if resp.CanRespond(msg, channel) {
			return resp, true
		}
	}
	return nil, false
}

// Names responder names in priority order
func (r *Registry) Names() []string {
	names := make([]string, len(r.responders))
	for i, resp := range r.responders {
		names[i] = resp.Name()
	}
	return names
}
