package repository

import (
	"context"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
)

// RateSource provides AMD exchange rates published by banks
type RateSource interface {
	// ListBankNames returns every bank name shown by the source
	ListBankNames(ctx context.Context, lang entity.Language) ([]string, error)

	// GetAllRates returns the best rate pair and one single-currency sheet per bank
	GetAllRates(ctx context.Context, lang entity.Language, cur entity.Currency, nonCash bool) (entity.BestRatePair, []entity.BankRateSheet, error)

	// GetBankRates returns USD and RUR rates of one bank
	GetBankRates(ctx context.Context, externalID string, lang entity.Language, nonCash bool) (entity.BankRateSheet, error)
}
