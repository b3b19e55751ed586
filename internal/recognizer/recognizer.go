// Package recognizer maps free text in Armenian, English or Russian to an
// intent, an action and params.
package recognizer

import (
	"github.com/yourusername/dram-rate-bot/internal/catalog"
	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
)

// Recognizer recognizes messages of one intent
type Recognizer interface {
	Intent() entity.Intent
	Recognize(text string) (entity.RecognizedMessage, bool)
}

// Chain tries recognizers in priority order, the first match wins
type Chain struct {
	recognizers []Recognizer
}

// NewChain creates a chain over recognizers, in the given order
func NewChain(recognizers ...Recognizer) *Chain {
	return &Chain{recognizers: recognizers}
}

// Default chain: help, contact, preferences, exchange rate, converter
func Default(cat *catalog.Catalog) *Chain {
	return NewChain(
		NewCommandRecognizer(entity.IntentHelp, helpCommands),
		NewCommandRecognizer(entity.IntentContact, contactCommands),
		NewCommandRecognizer(entity.IntentPreferences, preferencesCommands),
		NewCommandRecognizer(entity.IntentExchangeRate, ExchangeRateCommands(cat)),
		NumberRecognizer{},
	)
}

// Recognize returns the first recognizer's result, or an Unknown intent
func (c *Chain) Recognize(text string) entity.RecognizedMessage {
	for _, r := range c.recognizers {
		if msg, ok := r.Recognize(text); ok {
			return msg
		}
	}
	return entity.RecognizedMessage{Intent: entity.IntentUnknown}
}

// Order intents of the chain in priority order
func (c *Chain) Order() []entity.Intent {
	out := make([]entity.Intent, len(c.recognizers))
	for i, r := range c.recognizers {
		out[i] = r.Intent()
	}
	return out
}
