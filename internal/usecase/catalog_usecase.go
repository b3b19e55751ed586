package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/yourusername/dram-rate-bot/internal/catalog"
	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/domain/repository"
)

// CatalogUseCase builds and describes the bank catalog
type CatalogUseCase interface {
	// Load returns the built-in catalog, or the one read from the workbook at path
	Load(ctx context.Context, path string) (*catalog.Catalog, error)

	// Describe lists the catalog banks in lang, one per line
	Describe(cat *catalog.Catalog, lang entity.Language) string
}

type catalogUseCase struct {
	parser repository.BankCatalogParser
}

// NewCatalogUseCase creates the CatalogUseCase
func NewCatalogUseCase(parser repository.BankCatalogParser) CatalogUseCase {
	return &catalogUseCase{parser: parser}
}

func (u *catalogUseCase) Load(ctx context.Context, path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}

	banks, err := u.parser.ParseBanks(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bank catalog: %w", err)
	}

	cat, err := catalog.New(banks)
	if err != nil {
		return nil, fmt.Errorf("invalid bank catalog %s: %w", path, err)
	}
	return cat, nil
}

func (u *catalogUseCase) Describe(cat *catalog.Catalog, lang entity.Language) string {
	var sb strings.Builder
	for i, b := range cat.All() {
		fmt.Fprintf(&sb, "%d. %s (%s, %s)\n", i+1, b.Name(lang), b.ID, b.ExternalID)
	}
	return sb.String()
}
