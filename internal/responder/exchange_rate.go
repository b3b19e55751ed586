package responder

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yourusername/dram-rate-bot/internal/apperr"
	"github.com/yourusername/dram-rate-bot/internal/catalog"
	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/domain/repository"
	"github.com/yourusername/dram-rate-bot/internal/i18n"
	"github.com/yourusername/dram-rate-bot/internal/recognizer"
)

// rurClues params switching the "all" table to RUR. A trailing * marks a prefix.
var rurClues = []string{"₽", "ru", "rur", "rub*", "rus*", "ру", "руб*", "рус*", "рос*", "ռուս*", "ռուբ*"}

type rateAction func(ctx context.Context, msg entity.RecognizedMessage, channel string, prefs entity.UserPreferences) (Reply, error)

// ExchangeRateResponder answers rate queries: all banks, bank list, the
// user's bank or a named bank.
type ExchangeRateResponder struct {
	source  repository.RateSource
	catalog *catalog.Catalog
	actions map[string]rateAction
}

// NewExchangeRateResponder builds the action table, one entry per catalog bank
// besides all, banks and mybank.
func NewExchangeRateResponder(source repository.RateSource, cat *catalog.Catalog) *ExchangeRateResponder {
	r := &ExchangeRateResponder{source: source, catalog: cat}
	r.actions = map[string]rateAction{
		recognizer.ActionAll:    r.all,
		recognizer.ActionBanks:  r.banks,
		recognizer.ActionMyBank: r.myBank,
	}
	for _, b := range cat.All() {
		r.actions[string(b.ID)] = r.namedBank
	}
	return r
}

func (r *ExchangeRateResponder) Name() string { return "exchange_rate" }

// CanRespond is false for actions outside the table, those messages fall
// through to later responders.
func (r *ExchangeRateResponder) CanRespond(msg entity.RecognizedMessage, _ string) bool {
	if msg.Intent != entity.IntentExchangeRate {
		return false
	}
	_, ok := r.actions[msg.Action]
	return ok
}

func (r *ExchangeRateResponder) Respond(ctx context.Context, msg entity.RecognizedMessage, channel, _ string, prefs entity.UserPreferences) (Reply, error) {
	action, ok := r.actions[msg.Action]
	if !ok {
		return Reply{}, apperr.Internal("responder.ExchangeRate", "unsupported action %q", msg.Action)
	}
	return action(ctx, msg, channel, prefs)
}

// queriedCurrency USD unless a param hints at rubles
func queriedCurrency(params []string) entity.Currency {
	for _, clue := range rurClues {
		prefix, isPrefix := strings.CutSuffix(clue, "*")
		for _, p := range params {
			if (isPrefix && strings.HasPrefix(p, prefix)) || (!isPrefix && p == clue) {
				return entity.CurrencyRUR
			}
		}
	}
	return entity.CurrencyUSD
}

// allRates best pair and sheets of one mode
type allRates struct {
	best   entity.BestRatePair
	sheets []entity.BankRateSheet
}

func (r *ExchangeRateResponder) all(ctx context.Context, msg entity.RecognizedMessage, channel string, prefs entity.UserPreferences) (Reply, error) {
	bank, err := userBank(r.catalog, prefs)
	if err != nil {
		return Reply{}, err
	}
	lang := prefs.Language
	cur := queriedCurrency(msg.Params)

	var nonCash, cash allRates
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		nonCash.best, nonCash.sheets, err = r.source.GetAllRates(gctx, lang, cur, true)
		return err
	})
	g.Go(func() error {
		var err error
		cash.best, cash.sheets, err = r.source.GetAllRates(gctx, lang, cur, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return Reply{}, err
	}

	m := markersFor(channel)
	currency := i18n.Money(currencyTemplate(cur), 1)
	columns := i18n.Get("buy", lang, nil) + " | " + i18n.Get("sell", lang, nil) + " | " + i18n.Get("bank_name", lang, nil)

	render := func(rates allRates, modeID string) string {
		sheets := orderSheets(rates.sheets, bank.ExternalID)
		return wrap(currency+", "+i18n.Get(modeID, lang, nil), m.header) + "\n\n\n\n" +
			columns + "\n\n" +
			"-----\n\n" +
			banksTable(sheets, cur, rates.best, bank.ExternalID, channel)
	}

	return MarkdownReply(channel,
		render(nonCash, "non_cash"),
		render(cash, "cash")+"\n\n",
	), nil
}

// orderSheets sorts by name and moves the user's bank to the front
func orderSheets(sheets []entity.BankRateSheet, userExternalID string) []entity.BankRateSheet {
	out := make([]entity.BankRateSheet, len(sheets))
	copy(out, sheets)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	for i, s := range out {
		if s.ExternalID != userExternalID {
			continue
		}
		copy(out[1:i+1], out[:i])
		out[0] = s
		break
	}
	return out
}

// banksTable one "buy | sell | name" row per bank
func banksTable(sheets []entity.BankRateSheet, cur entity.Currency, best entity.BestRatePair, userExternalID, channel string) string {
	m := markersFor(channel)
	rows := make([]string, 0, len(sheets))

	for _, s := range sheets {
		rate, _ := s.Rate(cur)

		buy := rate.Buy
		if buy != "" && buy == best.BestBuy {
			buy = wrap(buy, m.bold)
		}
		sell := rate.Sell
		if sell != "" && sell == best.BestSell {
			sell = wrap(sell, m.bold)
		}
		name := truncateName(s.Name, channel)
		if s.ExternalID == userExternalID {
			name = wrap(name, m.italic)
		}

		rows = append(rows, buy+" | "+sell+" | "+name)
	}
	return strings.Join(rows, "\n\n")
}

func (r *ExchangeRateResponder) banks(_ context.Context, _ entity.RecognizedMessage, _ string, prefs entity.UserPreferences) (Reply, error) {
	return Reply{Messages: []entity.OutboundMessage{{
		Text:     i18n.Get("choose_bank_for_rates", prefs.Language, nil),
		Keyboard: Buttons(r.catalog.Names(prefs.Language)...),
	}}}, nil
}

func (r *ExchangeRateResponder) myBank(ctx context.Context, _ entity.RecognizedMessage, channel string, prefs entity.UserPreferences) (Reply, error) {
	bank, err := userBank(r.catalog, prefs)
	if err != nil {
		return Reply{}, err
	}
	return r.bankRates(ctx, bank, channel, prefs.Language)
}

func (r *ExchangeRateResponder) namedBank(ctx context.Context, msg entity.RecognizedMessage, channel string, prefs entity.UserPreferences) (Reply, error) {
	bank, ok := r.catalog.ByID(entity.BankID(msg.Action))
	if !ok {
		return Reply{}, apperr.Internal("responder.ExchangeRate", "bank %q is not in the catalog", msg.Action)
	}
	return r.bankRates(ctx, bank, channel, prefs.Language)
}

// bankRates single text with the non-cash and cash blocks of one bank
func (r *ExchangeRateResponder) bankRates(ctx context.Context, bank entity.Bank, channel string, lang entity.Language) (Reply, error) {
	sheets, err := fetchBankRates(ctx, r.source, bank.ExternalID, lang)
	if err != nil {
		return Reply{}, err
	}

	text := bankHeader(sheets.nonCash, channel) +
		modeTitle(true, lang) + rateBlock(sheets.nonCash, lang) +
		modeTitle(false, lang) + rateBlock(sheets.cash, lang)

	return MarkdownReply(channel, text), nil
}

// rateBlock buy and sell lines of every currency of the sheet
func rateBlock(sheet entity.BankRateSheet, lang entity.Language) string {
	var b strings.Builder
	for _, cur := range sheetCurrencies {
		rate, _ := sheet.Rate(cur)
		label := i18n.Money(currencyTemplate(cur), 1)
		b.WriteString(rateLine(label, "buy", rate.Buy, lang))
		b.WriteString(rateLine(label, "sell", rate.Sell, lang))
	}
	return b.String()
}
