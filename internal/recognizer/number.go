package recognizer

import (
	"regexp"
	"strings"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
)

// ActionConvert action of currency converter messages
const ActionConvert = "convert"

var numberRe = regexp.MustCompile(`\d+([.,]\d+)?`)

// NumberRecognizer recognizes messages containing an amount to convert
type NumberRecognizer struct{}

// Intent intent of recognized messages
func (NumberRecognizer) Intent() entity.Intent { return entity.IntentCurrencyConverter }

// Recognize takes the first decimal number of the message as the amount.
// A comma decimal separator is rewritten to a dot in the amount param.
func (NumberRecognizer) Recognize(text string) (entity.RecognizedMessage, bool) {
	msg := Normalize(text)

	number := numberRe.FindString(msg)
	if number == "" {
		return entity.RecognizedMessage{}, false
	}

	rest := strings.Replace(msg, number, "", 1)
	params := append([]string{strings.Replace(number, ",", ".", 1)}, splitParams(rest)...)

	return entity.RecognizedMessage{
		Intent: entity.IntentCurrencyConverter,
		Action: ActionConvert,
		Params: params,
	}, true
}
