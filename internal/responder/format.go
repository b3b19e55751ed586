package responder

import (
	"strings"
	"unicode/utf8"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/i18n"
)

// markers highlighting of one channel
type markers struct {
	bold   string
	italic string
	header string // bold marker of reply headers
}

func markersFor(channel string) markers {
	if channel == entity.ChannelFacebook {
		return markers{bold: "'", italic: "'"}
	}
	return markers{bold: "**", italic: "*", header: "**"}
}

func wrap(s, marker string) string {
	return marker + s + marker
}

// truncateName shortens bank names to fit the table width of narrow channels
func truncateName(name, channel string) string {
	switch channel {
	case entity.ChannelTelegram:
		if utf8.RuneCountInString(name) > 13 {
			return string([]rune(name)[:12])
		}
	case entity.ChannelFacebook:
		if utf8.RuneCountInString(name) > 8 {
			return string([]rune(name)[:6]) + "..."
		}
	}
	return name
}

// bankHeader first line of single-bank replies: name and update time
func bankHeader(sheet entity.BankRateSheet, channel string) string {
	return wrap(sheet.Name+" ("+sheet.UpdatedAt+")", markersFor(channel).header) + "\n\n"
}

// modeTitle title line of a cash or non-cash block
func modeTitle(nonCash bool, lang entity.Language) string {
	id := "cash"
	if nonCash {
		id = "non_cash"
	}
	return "\n" + i18n.Get(id, lang, nil) + "\n\n---\n\n"
}

// currencyTemplate money template id of cur
func currencyTemplate(cur entity.Currency) string {
	if cur == entity.CurrencyRUR {
		return "n_rur"
	}
	return "n_usd"
}

// rateLine one "label (buy|sell) - value" line
func rateLine(label, side, value string, lang entity.Language) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(" (")
	b.WriteString(i18n.Get(side, lang, nil))
	b.WriteString(") - ")
	b.WriteString(value)
	b.WriteString("\n\n")
	return b.String()
}
