package repository

import (
	"context"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
)

// BankCatalogParser reads a bank catalog from an external file
type BankCatalogParser interface {
	// ParseBanks reads banks from the file at path
	ParseBanks(ctx context.Context, path string) ([]entity.Bank, error)

	// ParseBanksFromBytes reads banks from an in-memory file
	ParseBanksFromBytes(ctx context.Context, data []byte) ([]entity.Bank, error)
}
