package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/yourusername/dram-rate-bot/config"
	"github.com/yourusername/dram-rate-bot/internal/catalog"
	"github.com/yourusername/dram-rate-bot/internal/domain/repository"
	"github.com/yourusername/dram-rate-bot/internal/infrastructure/parser"
	"github.com/yourusername/dram-rate-bot/internal/infrastructure/rateam"
	"github.com/yourusername/dram-rate-bot/internal/infrastructure/storage"
	"github.com/yourusername/dram-rate-bot/internal/recognizer"
	"github.com/yourusername/dram-rate-bot/internal/responder"
	"github.com/yourusername/dram-rate-bot/internal/usecase"
)

// app dependencies shared by the commands
type app struct {
	catalog  *catalog.Catalog
	catalogs usecase.CatalogUseCase
	source   repository.RateSource
	registry *responder.Registry
	chain    *recognizer.Chain
}

func newApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, error) {
	catalogs := usecase.NewCatalogUseCase(parser.NewExcelCatalogParser(log.Named("catalog")))
	cat, err := catalogs.Load(ctx, cfg.BankCatalogXLSX)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: cfg.RatesTimeout}
	source := rateam.NewSource(client, cfg.RatesBaseURL, log.Named("rateam"))

	return &app{
		catalog:  cat,
		catalogs: catalogs,
		source:   source,
		registry: responder.Default(source, cat),
		chain:    recognizer.Default(cat),
	}, nil
}

// dialog wires the conversation use case on top of the state store
func (a *app) dialog(states repository.StateRepository, log *zap.Logger) usecase.DialogUseCase {
	return usecase.NewDialogUseCase(states, a.chain, a.registry, usecase.NewPreferencesFlow(a.catalog), log.Named("dialog"))
}

func openStates(ctx context.Context, cfg *config.Config) (repository.StateRepository, error) {
	states, err := storage.Open(ctx, storage.Options{
		Driver:      cfg.StorageDriver,
		SQLitePath:  cfg.SQLitePath,
		PostgresDSN: cfg.PostgresDSN,
		Redis: storage.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s state store: %w", cfg.StorageDriver, err)
	}
	return states, nil
}
