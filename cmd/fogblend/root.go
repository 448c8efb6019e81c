package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ciiqr/fog"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "fogblend",
	Short: "Composite PNG images with fixed-point pixel arithmetic",
	Long: `fogblend blends PNG images using the fog compositing operators
(src, over, plus, multiply, screen). All arithmetic runs on premultiplied
ARGB32 pixels with byte-exact fixed-point math.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var level slog.Level
		switch logLevel {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)
		fog.SetLogger(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
