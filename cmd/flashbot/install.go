package main

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/flashbot/internal/config"
	"github.com/sandevgo/flashbot/internal/service/installer"
	"github.com/sandevgo/flashbot/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Set up FlashBot credentials",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting setup wizard")

		if _, err := installer.RunWizard(); err != nil {
			return err
		}

		// Load the newly created .env so the summary reflects it
		runtimePath := config.GetRuntimePath()
		envPath := filepath.Join(runtimePath, ".env")
		if err := godotenv.Load(envPath); err != nil {
			logger.Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
		}

		logger.Info().Msgf("initialized runtime directory at: %s", runtimePath)
		logger.Info().Msg("Setup complete! You can now run 'flashbot start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
