package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/flashbot/pkg/log"
)

type TelegramConfig struct {
	Token string `env:"FLASHBOT_TELEGRAM_TOKEN,required,notEmpty"`

	// Optional chat to notify when the bot comes up
	AdminChatID int64 `env:"FLASHBOT_ADMIN_CHAT_ID"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}
