package main

import (
	"context"
	"log/slog"
	"os"

	"anibot/internal/adapters/discord"
	"anibot/internal/application"
	"anibot/internal/config"
	"anibot/internal/infrastructure/anilist"
	"anibot/internal/infrastructure/database"
	"anibot/internal/infrastructure/i18n"
	"anibot/internal/infrastructure/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("run migrations", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("initialise database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	watchlistRepo := database.NewWatchlistRepository(pool)
	catalog := anilist.NewClient(cfg.AnilistURL, nil, logger)
	translator := i18n.NewTranslator(cfg.DefaultLocale, logger)

	handler := discord.NewHandler(
		application.NewMediaService(catalog, logger),
		application.NewWatchlistService(watchlistRepo, catalog),
		application.NewReleaseService(watchlistRepo, catalog, logger),
		translator,
		translator.DefaultLocale(),
		cfg.AnnounceChannelID,
		logger,
	)

	bot, err := discord.NewBot(cfg, handler, logger)
	if err != nil {
		logger.Error("create bot", "error", err)
		os.Exit(1)
	}
	if err := bot.Start(ctx); err != nil {
		logger.Error("start bot", "error", err)
		os.Exit(1)
	}
}
