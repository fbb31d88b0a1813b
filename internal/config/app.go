package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/flashbot/pkg/log"
)

const (
	StorageMemory = "memory"
	StorageSqlite = "sqlite"
)

type AppConfig struct {
	RuntimePath string `env:"FLASHBOT_RUNTIME_PATH" envDefault:".flashbot"`

	// Storage backend for conversation context: memory or sqlite
	Storage string `env:"FLASHBOT_STORAGE" envDefault:"memory"`

	// Maximum number of user/assistant exchange pairs kept per user
	MaxContextLength int `env:"FLASHBOT_MAX_CONTEXT" envDefault:"10"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetDatabasePath() string {
	path := c.RuntimePath
	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return filepath.Join(path, "flashbot.db")
}

// HistoryBound is the hard cap on stored messages per user. Doubled
// because every completed exchange stores a user and an assistant turn.
func (c AppConfig) HistoryBound() int {
	return 2 * c.MaxContextLength
}
