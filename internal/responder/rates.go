package responder

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yourusername/dram-rate-bot/internal/apperr"
	"github.com/yourusername/dram-rate-bot/internal/catalog"
	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/domain/repository"
)

// sheetCurrencies currencies of single-bank replies, in display order
var sheetCurrencies = []entity.Currency{entity.CurrencyUSD, entity.CurrencyRUR}

// modeSheets rates of one bank in both modes
type modeSheets struct {
	nonCash entity.BankRateSheet
	cash    entity.BankRateSheet
}

// fetchBankRates fetches non-cash and cash rates of one bank concurrently
func fetchBankRates(ctx context.Context, source repository.RateSource, externalID string, lang entity.Language) (modeSheets, error) {
	var out modeSheets

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sheet, err := source.GetBankRates(gctx, externalID, lang, true)
		out.nonCash = sheet
		return err
	})
	g.Go(func() error {
		sheet, err := source.GetBankRates(gctx, externalID, lang, false)
		out.cash = sheet
		return err
	})

	if err := g.Wait(); err != nil {
		return modeSheets{}, err
	}
	return out, nil
}

// userBank bank chosen by the user
func userBank(cat *catalog.Catalog, prefs entity.UserPreferences) (entity.Bank, error) {
	bank, ok := cat.ByID(prefs.BankID)
	if !ok {
		return entity.Bank{}, apperr.Internal("responder.userBank", "bank %q is not in the catalog", prefs.BankID)
	}
	return bank, nil
}
