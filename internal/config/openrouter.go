package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/flashbot/pkg/log"
)

type OpenRouterConfig struct {
	APIKey string `env:"FLASHBOT_OPENROUTER_API_KEY,required,notEmpty"`
	Model  string `env:"FLASHBOT_MODEL" envDefault:"google/gemini-2.0-flash-exp:free"`

	MaxTokens   int           `env:"FLASHBOT_MAX_TOKENS" envDefault:"4096"`
	Temperature float64       `env:"FLASHBOT_TEMPERATURE" envDefault:"0.7"`
	Timeout     time.Duration `env:"FLASHBOT_API_TIMEOUT" envDefault:"60s"`
}

func NewOpenRouterConfig(ctx context.Context) *OpenRouterConfig {
	c := &OpenRouterConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenRouter config")
	}
	return c
}
