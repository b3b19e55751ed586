package responder

import (
	"context"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/i18n"
)

// ChangePreferenceResponder hands preference messages to the preference flow
type ChangePreferenceResponder struct{}

func (ChangePreferenceResponder) Name() string { return "change_preference" }

func (ChangePreferenceResponder) CanRespond(msg entity.RecognizedMessage, _ string) bool {
	return msg.Intent == entity.IntentPreferences
}

func (ChangePreferenceResponder) Respond(context.Context, entity.RecognizedMessage, string, string, entity.UserPreferences) (Reply, error) {
	return Reply{StartPreferences: true}, nil
}

// ContactResponder replies with contact details
type ContactResponder struct{}

func (ContactResponder) Name() string { return "contact" }

func (ContactResponder) CanRespond(msg entity.RecognizedMessage, _ string) bool {
	return msg.Intent == entity.IntentContact
}

func (ContactResponder) Respond(_ context.Context, _ entity.RecognizedMessage, _, _ string, prefs entity.UserPreferences) (Reply, error) {
	return TextReply(i18n.Get("contact", prefs.Language, nil)), nil
}

// HelpResponder accepts every message and replies with the command list
type HelpResponder struct{}

func (HelpResponder) Name() string { return "help" }

func (HelpResponder) CanRespond(entity.RecognizedMessage, string) bool { return true }

func (HelpResponder) Respond(_ context.Context, _ entity.RecognizedMessage, _, _ string, prefs entity.UserPreferences) (Reply, error) {
	return TextReply(i18n.Get("help", prefs.Language, nil)), nil
}
