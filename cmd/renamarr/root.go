package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "renamarr",
	Short: "Rename media libraries into canonical Jellyfin layout",
	Long: `renamarr - rename media libraries into canonical Jellyfin layout

Infers title, year, season/episode and resolution from file paths,
resolves each title against TMDB for a canonical id, matches loose
subtitle files to a language, and moves everything into a clean
directory structure.

Run with --dry-run first: it writes placeholder text files describing
every move instead of touching your media.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Config file path")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("renamarr {{.Version}}\n")

	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(parseCmd)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
