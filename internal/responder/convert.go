package responder

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/yourusername/dram-rate-bot/internal/apperr"
	"github.com/yourusername/dram-rate-bot/internal/catalog"
	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/domain/repository"
	"github.com/yourusername/dram-rate-bot/internal/i18n"
)

// amdWords params turning the conversion around: AMD to foreign currencies
var amdWords = []string{"֏", "amd", "dram", "drams", "драм", "драмов", "драмы", "драма", "դրամ"}

const maxIntegerDigits = 9

// ConvertResponder converts an amount with the rates of the user's bank
type ConvertResponder struct {
	source  repository.RateSource
	catalog *catalog.Catalog
}

// NewConvertResponder creates the converter responder
func NewConvertResponder(source repository.RateSource, cat *catalog.Catalog) *ConvertResponder {
	return &ConvertResponder{source: source, catalog: cat}
}

func (r *ConvertResponder) Name() string { return "currency_converter" }

func (r *ConvertResponder) CanRespond(msg entity.RecognizedMessage, _ string) bool {
	return msg.Intent == entity.IntentCurrencyConverter
}

func (r *ConvertResponder) Respond(ctx context.Context, msg entity.RecognizedMessage, channel, _ string, prefs entity.UserPreferences) (Reply, error) {
	lang := prefs.Language

	raw, ok := msg.Param(0)
	if !ok || raw == "" {
		return Reply{}, apperr.Internal("responder.Convert", "amount is missing in params")
	}

	amount, rejection, err := parseAmount(raw)
	if err != nil {
		return Reply{}, err
	}
	if rejection != "" {
		return TextReply(i18n.Get(rejection, lang, nil)), nil
	}

	bank, err := userBank(r.catalog, prefs)
	if err != nil {
		return Reply{}, err
	}
	sheets, err := fetchBankRates(ctx, r.source, bank.ExternalID, lang)
	if err != nil {
		return Reply{}, err
	}

	toAMD := !hasAMDWord(msg.Params)

	text := bankHeader(sheets.nonCash, channel) +
		modeTitle(true, lang) + conversionBlock(sheets.nonCash, amount, toAMD, lang) +
		modeTitle(false, lang) + conversionBlock(sheets.cash, amount, toAMD, lang)

	return MarkdownReply(channel, text), nil
}

// parseAmount validates the amount: leading zeros are dropped and the
// fraction is truncated to two digits. A non-empty rejection is the message
// id to reply with instead of converting.
func parseAmount(raw string) (amount float64, rejection string, err error) {
	intPart, frac, hasFrac := strings.Cut(raw, ".")
	intPart = strings.TrimLeft(intPart, "0")

	if len(intPart) > maxIntegerDigits {
		return 0, "err_n_big", nil
	}

	truncated := "00"
	if hasFrac {
		truncated = frac
		if len(truncated) > 2 {
			truncated = truncated[:2]
		}
	}

	intDigits := intPart
	if intDigits == "" {
		intDigits = "0"
	}
	amount, err = strconv.ParseFloat(intDigits+"."+truncated, 64)
	if err != nil {
		return 0, "", apperr.Internal("responder.Convert", "invalid amount %q: %v", raw, err)
	}

	if amount == 0 {
		if !hasFrac || strings.TrimRight(frac, "0") == "" {
			return 0, "err_n_0", nil
		}
		return 0, "err_n_small", nil
	}
	return amount, "", nil
}

func hasAMDWord(params []string) bool {
	for _, p := range params {
		if slices.Contains(amdWords, p) {
			return true
		}
	}
	return false
}

// convertRate applies amount to one quote. ok is false when there is no quote.
func convertRate(rate string, amount float64, toAMD bool) (float64, bool) {
	if rate == "" {
		return 0, false
	}
	x, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return 0, false
	}
	if toAMD {
		return x * amount, true
	}
	if x == 0 {
		return 0, false
	}
	return amount / x, true
}

// conversionBlock four converted lines of one mode
func conversionBlock(sheet entity.BankRateSheet, amount float64, toAMD bool, lang entity.Language) string {
	var b strings.Builder
	for _, cur := range sheetCurrencies {
		rate, _ := sheet.Rate(cur)
		tmpl := currencyTemplate(cur)

		for _, side := range []struct{ id, quote string }{{"buy", rate.Buy}, {"sell", rate.Sell}} {
			converted := ""
			if x, ok := convertRate(side.quote, amount, toAMD); ok {
				if toAMD {
					converted = i18n.Money("n_amd", x)
				} else {
					converted = i18n.Money(tmpl, x)
				}
			}

			if toAMD {
				b.WriteString(rateLine(i18n.Money(tmpl, amount), side.id, converted, lang))
			} else {
				b.WriteString(converted + " (" + i18n.Get(side.id, lang, nil) + ") - " + i18n.Money("n_amd", amount) + "\n\n")
			}
		}
	}
	return b.String()
}
