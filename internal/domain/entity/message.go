package entity

// Intent coarse classification of a user message
type Intent int

const (
	IntentUnknown Intent = iota
	IntentHelp
	IntentContact
	IntentPreferences
	IntentExchangeRate
	IntentCurrencyConverter
)

func (i Intent) String() string {
	switch i {
	case IntentHelp:
		return "help"
	case IntentContact:
		return "contact"
	case IntentPreferences:
		return "preferences"
	case IntentExchangeRate:
		return "exchange_rate"
	case IntentCurrencyConverter:
		return "currency_converter"
	default:
		return "unknown"
	}
}

// RecognizedMessage result of message recognition.
// Action is empty when the recognizer did not set one.
type RecognizedMessage struct {
	Intent Intent
	Action string
	Params []string
}

// Param returns the positional param at i
func (m RecognizedMessage) Param(i int) (string, bool) {
	if i < 0 || i >= len(m.Params) {
		return "", false
	}
	return m.Params[i], true
}

// OutboundMessage single message sent back to the user
type OutboundMessage struct {
	Text     string
	Keyboard [][]string // optional button menu, one slice per row
	Markdown bool       // Text uses **bold** / *italic* markers
}
