package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardwise/perktrack/internal/config"
	"github.com/cardwise/perktrack/internal/logger"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "perktrack",
	Short:         "Credit card benefit tracking service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		setupLogger(cfg.Log)

		slog.Info("Configuration loaded",
			slog.String("path", configPath),
			slog.String("version", Version),
			slog.String("commit", Commit),
			slog.String("type", string(logger.TypeSystem)))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to config")
}

func setupLogger(c config.LogConfig) {
	if strings.EqualFold(c.Format, "json") {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     c.Level,
			AddSource: c.AddSource,
		})))
		return
	}
	logger.Setup(logger.Options{
		Name:      "perktrack",
		Level:     c.Level,
		AddSource: c.AddSource,
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
