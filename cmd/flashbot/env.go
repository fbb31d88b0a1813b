package main

import (
	"fmt"

	caarlos0 "github.com/caarlos0/env/v11"
	"github.com/sandevgo/flashbot/internal/config"
	"github.com/sandevgo/flashbot/pkg/env"
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the effective configuration in .env format",
	Long:  `Resolves the configuration from the current environment and prints it as .env content. Unset required keys are listed as comments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appCfg := &config.AppConfig{}
		orCfg := &config.OpenRouterConfig{}
		tgCfg := &config.TelegramConfig{}

		// Parse errors are expected here when required credentials are
		// not set yet; whatever resolved still gets printed.
		_ = caarlos0.Parse(appCfg)
		_ = caarlos0.Parse(orCfg)
		_ = caarlos0.Parse(tgCfg)

		for _, cfg := range []any{tgCfg, orCfg, appCfg} {
			out, err := env.MarshalEnv(cfg)
			if err != nil {
				return err
			}
			fmt.Print(out)
		}

		if tgCfg.Token == "" {
			fmt.Println("# FLASHBOT_TELEGRAM_TOKEN=")
		}
		if orCfg.APIKey == "" {
			fmt.Println("# FLASHBOT_OPENROUTER_API_KEY=")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
