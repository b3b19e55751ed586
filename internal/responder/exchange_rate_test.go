package responder

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/dram-rate-bot/internal/catalog"
	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
)

func mustBank(t *testing.T, id entity.BankID) entity.Bank {
	t.Helper()
	b, ok := catalog.Default().ByID(id)
	require.True(t, ok)
	return b
}

func allRatesSource(t *testing.T) *fakeSource {
	acba := mustBank(t, catalog.Acba)
	ameria := mustBank(t, catalog.Ameria)

	one := func(buy, sell string) []entity.ExchangeRate {
		return []entity.ExchangeRate{{Currency: entity.CurrencyUSD, Buy: buy, Sell: sell}}
	}
	return &fakeSource{
		best: entity.BestRatePair{BestBuy: "482.00", BestSell: "484.00"},
		sheets: []entity.BankRateSheet{
			{ExternalID: "evoca-ext", Name: "Evocabank", Rates: one("480.00", "486.00")},
			{ExternalID: ameria.ExternalID, Name: "Ameriabank", Rates: one("481.00", "485.00")},
			{ExternalID: acba.ExternalID, Name: "ACBA-Credit Agricole Bank", Rates: one("482.00", "484.00")},
		},
	}
}

var ameriaEn = entity.UserPreferences{Language: entity.LanguageEn, BankID: catalog.Ameria}

func TestQueriedCurrency(t *testing.T) {
	tests := []struct {
		params []string
		want   entity.Currency
	}{
		{nil, entity.CurrencyUSD},
		{[]string{"$"}, entity.CurrencyUSD},
		{[]string{"₽"}, entity.CurrencyRUR},
		{[]string{"🇷🇺", "", "₽"}, entity.CurrencyRUR},
		{[]string{"rubles"}, entity.CurrencyRUR},
		{[]string{"russian"}, entity.CurrencyRUR},
		{[]string{"рублей"}, entity.CurrencyRUR},
		{[]string{"ռուբլի"}, entity.CurrencyRUR},
		{[]string{"ru"}, entity.CurrencyRUR},
		{[]string{"rur"}, entity.CurrencyRUR},
		// exact clues do not match as prefixes
		{[]string{"rural"}, entity.CurrencyUSD},
		{[]string{"руда"}, entity.CurrencyUSD},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, queriedCurrency(tt.params), "%q", tt.params)
	}
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "ACBA-Credit ", truncateName("ACBA-Credit Agricole Bank", entity.ChannelTelegram))
	assert.Equal(t, "Ameriabank", truncateName("Ameriabank", entity.ChannelTelegram))
	assert.Equal(t, "Ameria...", truncateName("Ameriabank", entity.ChannelFacebook))
	assert.Equal(t, "Unibank", truncateName("Unibank", entity.ChannelFacebook))
	assert.Equal(t, "ACBA-Credit Agricole Bank", truncateName("ACBA-Credit Agricole Bank", entity.ChannelWeb))
	assert.Equal(t, "Ամերիա...", truncateName("Ամերիաբանկ", entity.ChannelFacebook))
}

func TestOrderSheets(t *testing.T) {
	sheets := []entity.BankRateSheet{
		{ExternalID: "c", Name: "Cc"},
		{ExternalID: "a", Name: "Aa"},
		{ExternalID: "d", Name: "Dd"},
		{ExternalID: "b", Name: "Bb"},
	}

	got := orderSheets(sheets, "c")
	names := make([]string, len(got))
	for i, s := range got {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Cc", "Aa", "Bb", "Dd"}, names)

	// input untouched
	assert.Equal(t, "Cc", sheets[0].Name)

	got = orderSheets(sheets, "missing")
	assert.Equal(t, "Aa", got[0].Name)
}

func TestAllRatesTelegram(t *testing.T) {
	src := allRatesSource(t)
	r := NewExchangeRateResponder(src, catalog.Default())

	msg := entity.RecognizedMessage{Intent: entity.IntentExchangeRate, Action: "all"}
	reply, err := r.Respond(context.Background(), msg, entity.ChannelTelegram, "all", ameriaEn)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 2)

	table := "481.00 | 485.00 | *Ameriabank*\n\n" +
		"**482.00** | **484.00** | ACBA-Credit \n\n" +
		"480.00 | 486.00 | Evocabank"

	wantNonCash := "**🇺🇸 1.00$, Non-cash**\n\n\n\nBuy | Sell | Bank\n\n-----\n\n" + table
	wantCash := "**🇺🇸 1.00$, Cash**\n\n\n\nBuy | Sell | Bank\n\n-----\n\n" + table + "\n\n"

	if diff := cmp.Diff(wantNonCash, reply.Messages[0].Text); diff != "" {
		t.Errorf("non-cash table mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantCash, reply.Messages[1].Text); diff != "" {
		t.Errorf("cash table mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, reply.Messages[0].Markdown)

	assert.ElementsMatch(t, []allCall{
		{lang: entity.LanguageEn, cur: entity.CurrencyUSD, nonCash: true},
		{lang: entity.LanguageEn, cur: entity.CurrencyUSD, nonCash: false},
	}, src.allCalls)
}

func TestAllRatesFacebook(t *testing.T) {
	src := allRatesSource(t)
	r := NewExchangeRateResponder(src, catalog.Default())

	msg := entity.RecognizedMessage{Intent: entity.IntentExchangeRate, Action: "all"}
	reply, err := r.Respond(context.Background(), msg, entity.ChannelFacebook, "all", ameriaEn)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 2)

	want := "🇺🇸 1.00$, Non-cash\n\n\n\nBuy | Sell | Bank\n\n-----\n\n" +
		"481.00 | 485.00 | 'Ameria...'\n\n" +
		"'482.00' | '484.00' | ACBA-C...\n\n" +
		"480.00 | 486.00 | Evocab..."
	assert.Equal(t, want, reply.Messages[0].Text)
	assert.False(t, reply.Messages[0].Markdown)
}

func TestAllRatesRubles(t *testing.T) {
	src := allRatesSource(t)
	r := NewExchangeRateResponder(src, catalog.Default())

	msg := entity.RecognizedMessage{Intent: entity.IntentExchangeRate, Action: "all", Params: []string{"🇷🇺", "", "₽"}}
	reply, err := r.Respond(context.Background(), msg, entity.ChannelWeb, "🇷🇺 Все ₽", ameriaEn)
	require.NoError(t, err)

	assert.Contains(t, reply.Messages[0].Text, "🇷🇺 1.00₽, Non-cash")
	for _, c := range src.allCalls {
		assert.Equal(t, entity.CurrencyRUR, c.cur)
	}
}

func TestAllRatesUpstreamError(t *testing.T) {
	src := allRatesSource(t)
	src.err = errors.New("rate.am is down")
	r := NewExchangeRateResponder(src, catalog.Default())

	msg := entity.RecognizedMessage{Intent: entity.IntentExchangeRate, Action: "all"}
	_, err := r.Respond(context.Background(), msg, entity.ChannelWeb, "all", ameriaEn)
	require.Error(t, err)
	assert.ErrorIs(t, err, src.err)
}

func bankRatesSource() *fakeSource {
	return &fakeSource{bank: map[bool]entity.BankRateSheet{
		true:  {Name: "ACBA", UpdatedAt: "19.10.26, 12:30", Rates: usdRur("480", "485", "6.1", "6.5")},
		false: {Name: "ACBA", UpdatedAt: "19.10.26, 12:31", Rates: usdRur("479", "486", "", "")},
	}}
}

func TestNamedBankRates(t *testing.T) {
	src := bankRatesSource()
	r := NewExchangeRateResponder(src, catalog.Default())

	msg := entity.RecognizedMessage{Intent: entity.IntentExchangeRate, Action: string(catalog.Acba)}
	require.True(t, r.CanRespond(msg, entity.ChannelWeb))

	reply, err := r.Respond(context.Background(), msg, entity.ChannelWeb, "acba", ameriaEn)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 1)

	want := "**ACBA (19.10.26, 12:30)**\n\n" +
		"\nNon-cash\n\n---\n\n" +
		"🇺🇸 1.00$ (Buy) - 480\n\n" +
		"🇺🇸 1.00$ (Sell) - 485\n\n" +
		"🇷🇺 1.00₽ (Buy) - 6.1\n\n" +
		"🇷🇺 1.00₽ (Sell) - 6.5\n\n" +
		"\nCash\n\n---\n\n" +
		"🇺🇸 1.00$ (Buy) - 479\n\n" +
		"🇺🇸 1.00$ (Sell) - 486\n\n" +
		"🇷🇺 1.00₽ (Buy) - \n\n" +
		"🇷🇺 1.00₽ (Sell) - \n\n"
	if diff := cmp.Diff(want, reply.Messages[0].Text); diff != "" {
		t.Errorf("bank rates mismatch (-want +got):\n%s", diff)
	}

	acba := mustBank(t, catalog.Acba)
	assert.ElementsMatch(t, []bankCall{
		{externalID: acba.ExternalID, nonCash: true},
		{externalID: acba.ExternalID, nonCash: false},
	}, src.bankCalls)
}

func TestMyBankRates(t *testing.T) {
	src := bankRatesSource()
	r := NewExchangeRateResponder(src, catalog.Default())

	msg := entity.RecognizedMessage{Intent: entity.IntentExchangeRate, Action: "mybank"}
	reply, err := r.Respond(context.Background(), msg, entity.ChannelFacebook, "my bank", ameriaEn)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 1)
	assert.True(t, len(reply.Messages[0].Text) > 0)
	assert.Contains(t, reply.Messages[0].Text, "ACBA (19.10.26, 12:30)\n\n")
	assert.NotContains(t, reply.Messages[0].Text, "**")

	ameria := mustBank(t, catalog.Ameria)
	for _, c := range src.bankCalls {
		assert.Equal(t, ameria.ExternalID, c.externalID)
	}
}

func TestBanksKeyboard(t *testing.T) {
	cat := catalog.Default()
	r := NewExchangeRateResponder(&fakeSource{}, cat)

	msg := entity.RecognizedMessage{Intent: entity.IntentExchangeRate, Action: "banks"}
	reply, err := r.Respond(context.Background(), msg, entity.ChannelTelegram, "banks", ameriaEn)
	require.NoError(t, err)
	require.Len(t, reply.Messages, 1)

	out := reply.Messages[0]
	assert.Equal(t, "Choose a bank to get the exchange rates", out.Text)
	require.Len(t, out.Keyboard, cat.Len())
	assert.Equal(t, []string{"ACBA-Credit Agricole Bank"}, out.Keyboard[0])
}

func TestExchangeRateUnknownAction(t *testing.T) {
	r := NewExchangeRateResponder(&fakeSource{}, catalog.Default())

	msg := entity.RecognizedMessage{Intent: entity.IntentExchangeRate, Action: "nope"}
	assert.False(t, r.CanRespond(msg, entity.ChannelWeb))
	assert.False(t, r.CanRespond(entity.RecognizedMessage{Intent: entity.IntentHelp, Action: "all"}, entity.ChannelWeb))

	_, err := r.Respond(context.Background(), msg, entity.ChannelWeb, "nope", ameriaEn)
	require.Error(t, err)
}
