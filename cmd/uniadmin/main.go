package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/uniadmin/internal/pkg/logger"
)

// @title University Admin Console API
// @version 1.0
// @description Student, course and enrollment management plus a free-form SQL panel.

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

var configPath string

var rootCmd = &cobra.Command{
	Use:           "uniadmin",
	Short:         "University database administration console",
	Long:          `Serves the administration API, or runs statements against the university database from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "path to the configuration file")
	rootCmd.AddCommand(serveCmd, execCmd, templatesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
