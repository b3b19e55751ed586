package responder

import (
	"context"
	"sync"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
)

type allCall struct {
	lang    entity.Language
	cur     entity.Currency
	nonCash bool
}

type bankCall struct {
	externalID string
	nonCash    bool
}

// fakeSource in-memory RateSource recording its calls
type fakeSource struct {
	mu sync.Mutex

	best   entity.BestRatePair
	sheets []entity.BankRateSheet
	bank   map[bool]entity.BankRateSheet // by nonCash
	err    error

	allCalls  []allCall
	bankCalls []bankCall
}

func (f *fakeSource) ListBankNames(context.Context, entity.Language) ([]string, error) {
	return nil, f.err
}

func (f *fakeSource) GetAllRates(_ context.Context, lang entity.Language, cur entity.Currency, nonCash bool) (entity.BestRatePair, []entity.BankRateSheet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.allCalls = append(f.allCalls, allCall{lang: lang, cur: cur, nonCash: nonCash})
	if f.err != nil {
		return entity.BestRatePair{}, nil, f.err
	}
	return f.best, f.sheets, nil
}

func (f *fakeSource) GetBankRates(_ context.Context, externalID string, _ entity.Language, nonCash bool) (entity.BankRateSheet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bankCalls = append(f.bankCalls, bankCall{externalID: externalID, nonCash: nonCash})
	if f.err != nil {
		return entity.BankRateSheet{}, f.err
	}
	return f.bank[nonCash], nil
}

func (f *fakeSource) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.allCalls) + len(f.bankCalls)
}

func usdRur(usdBuy, usdSell, rurBuy, rurSell string) []entity.ExchangeRate {
	return []entity.ExchangeRate{
		{Currency: entity.CurrencyUSD, Buy: usdBuy, Sell: usdSell},
		{Currency: entity.CurrencyRUR, Buy: rurBuy, Sell: rurSell},
	}
}
