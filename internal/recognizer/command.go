package recognizer

import (
	"strings"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
)

// Command canonical action name with its synonyms, in match order
type Command struct {
	Action   string
	Synonyms []string
}

// CommandRecognizer recognizes messages containing one of its command synonyms
type CommandRecognizer struct {
	intent   entity.Intent
	commands []Command
}

// NewCommandRecognizer creates a recognizer over an ordered command table
func NewCommandRecognizer(intent entity.Intent, commands []Command) *CommandRecognizer {
	return &CommandRecognizer{intent: intent, commands: commands}
}

// Intent intent of recognized messages
func (r *CommandRecognizer) Intent() entity.Intent { return r.intent }

// Commands command table in match order
func (r *CommandRecognizer) Commands() []Command { return r.commands }

// Recognize scans commands in order and each command's synonyms in order.
// The first synonym found in the message decides the action; the rest of the
// message, with that synonym removed once, becomes the params.
func (r *CommandRecognizer) Recognize(text string) (entity.RecognizedMessage, bool) {
	msg := Normalize(text)

	for _, cmd := range r.commands {
		for _, syn := range cmd.Synonyms {
			if syn == "" || !strings.Contains(msg, syn) {
				continue
			}
			return entity.RecognizedMessage{
				Intent: r.intent,
				Action: cmd.Action,
				Params: splitParams(strings.Replace(msg, syn, "", 1)),
			}, true
		}
	}

	return entity.RecognizedMessage{}, false
}
