// Package i18n is the localized message catalog of the bot.
//
// Messages are keyed by id and language. Language-independent messages
// (language prompt, money templates, generic error) live in a separate
// global table. Templates use {name} placeholders.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
)

// Subs placeholder substitutions
type Subs map[string]string

// Lookup returns the message id in lang. An empty lang selects the global table.
func Lookup(id string, lang entity.Language) (string, bool) {
	if lang == "" {
		msg, ok := globalMessages[id]
		return msg, ok
	}
	msg, ok := localizedMessages[lang][id]
	return msg, ok
}

// Get returns the message id in lang with subs applied.
// A missing id yields the id itself so the gap is visible in replies.
func Get(id string, lang entity.Language, subs Subs) string {
	msg, ok := Lookup(id, lang)
	if !ok {
		return id
	}
	return apply(msg, subs)
}

// Global returns a language-independent message
func Global(id string, subs Subs) string {
	return Get(id, "", subs)
}

func apply(msg string, subs Subs) string {
	if len(subs) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(subs)*2)
	for k, v := range subs {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var printer = message.NewPrinter(language.English)

// FormatNumber renders n with two decimals and thousands separators, e.g. 48,000.00
func FormatNumber(n float64) string {
	return printer.Sprintf("%.2f", n)
}

// Money renders n with the template id (n_amd, n_usd or n_rur)
func Money(id string, n float64) string {
	return Global(id, Subs{"n": FormatNumber(n)})
}

// LanguageButton label of the language choice button
func LanguageButton(lang entity.Language) string {
	return Global("lang_"+string(lang), nil)
}

// IDs every per-language message id
func IDs() []string {
	ids := make([]string, 0, len(localizedMessages[entity.LanguageEn]))
	for id := range localizedMessages[entity.LanguageEn] {
		ids = append(ids, id)
	}
	return ids
}
