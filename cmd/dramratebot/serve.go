package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/dram-rate-bot/internal/delivery/telegram"
	"github.com/yourusername/dram-rate-bot/internal/delivery/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot and the HTTP channel",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.ValidateServe(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}

		states, err := openStates(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := states.Flush(context.Background()); err != nil {
				log.Error("failed to flush state store", zap.Error(err))
			}
		}()

		dialog := a.dialog(states, log)
		log.Info("bot starting",
			zap.Int("banks", a.catalog.Len()),
			zap.String("storage", cfg.StorageDriver),
			zap.Bool("telegram", cfg.TelegramEnabled()),
			zap.String("http_addr", cfg.HTTPAddr),
		)

		g, ctx := errgroup.WithContext(ctx)

		if cfg.TelegramEnabled() {
			bot, err := telegram.NewBotHandler(cfg.TelegramToken, dialog, log.Named("telegram"))
			if err != nil {
				return err
			}
			g.Go(func() error { return bot.Start(ctx) })
		}

		if cfg.HTTPAddr != "" {
			srv := web.NewServer(dialog, log.Named("web"))
			g.Go(func() error { return srv.ListenAndServe(ctx, cfg.HTTPAddr) })
		}

		err = g.Wait()
		if errors.Is(err, context.Canceled) {
			err = nil
		}
		log.Info("bot stopped")
		return err
	},
}
