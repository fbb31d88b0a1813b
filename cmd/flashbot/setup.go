package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/flashbot/internal/config"
	"github.com/sandevgo/flashbot/internal/core"
	"github.com/sandevgo/flashbot/internal/providers/llm"
	"github.com/sandevgo/flashbot/internal/service/chat"
	"github.com/sandevgo/flashbot/internal/storage/memory"
	"github.com/sandevgo/flashbot/internal/storage/sqlite"
	"github.com/sandevgo/flashbot/internal/transport/telegram"
	"github.com/sandevgo/flashbot/pkg/log"
	"github.com/sandevgo/flashbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration. Missing mandatory credentials are fatal before
	// anything starts serving.
	appCfg := config.NewAppConfig(ctx)
	orCfg := config.NewOpenRouterConfig(ctx)
	tgCfg := config.NewTelegramConfig(ctx)

	// 2. Context store
	store, cleanup := initStorage(ctx, appCfg)
	if cleanup != nil {
		services = append(services, srv.NewCleanup(cleanup))
	}

	// 3. Completion client
	provider := llm.NewOpenRouter(orCfg)

	// 4. Chat pipeline
	svc := chat.NewService(store, provider)

	// 5. Telegram transport
	bot, err := telegram.NewBot(ctx, tgCfg, svc, orCfg.Model)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
	}
	services = append(services, bot)

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (core.ContextStore, func() error) {
	logger := log.FromCtx(ctx)

	switch cfg.Storage {
	case config.StorageSqlite:
		db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to open context database")
		}
		return sqlite.NewStore(db, cfg.HistoryBound()), db.Close
	case config.StorageMemory:
		return memory.New(cfg.HistoryBound()), nil
	default:
		logger.Fatal().Str("storage", cfg.Storage).Msg("unknown storage backend")
		return nil, nil
	}
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
