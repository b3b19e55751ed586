// Package responder turns recognized messages into replies.
package responder

import (
	"context"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
)

// Responder claims recognized messages and builds replies for them
type Responder interface {
	// Name stable responder name, used in logs and tests
	Name() string

	// CanRespond reports whether the responder handles msg
	CanRespond(msg entity.RecognizedMessage, channel string) bool

	// Respond builds the reply. Only called after CanRespond returned true.
	Respond(ctx context.Context, msg entity.RecognizedMessage, channel, original string, prefs entity.UserPreferences) (Reply, error)
}

// Reply outcome of a responder: messages to send, or a request to start
// the preference-collection flow.
type Reply struct {
	Messages         []entity.OutboundMessage
	StartPreferences bool
}

// TextReply plain text reply, one message per text
func TextReply(texts ...string) Reply {
	msgs := make([]entity.OutboundMessage, len(texts))
	for i, t := range texts {
		msgs[i] = entity.OutboundMessage{Text: t}
	}
	return Reply{Messages: msgs}
}

// MarkdownReply reply whose texts carry bold/italic markers for channel
func MarkdownReply(channel string, texts ...string) Reply {
	r := TextReply(texts...)
	if channel == entity.ChannelFacebook {
		return r
	}
	for i := range r.Messages {
		r.Messages[i].Markdown = true
	}
	return r
}

// Buttons keyboard with one button per row
func Buttons(labels ...string) [][]string {
	rows := make([][]string, len(labels))
	for i, l := range labels {
		rows[i] = []string{l}
	}
	return rows
}
