// Package main is the entry point for the gantt application.
// It loads configuration and items, sets up logging, and starts the TUI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gantt/internal/config"
	"gantt/internal/importer"
	"gantt/internal/store"
	"gantt/internal/timeline"
	"gantt/internal/ui"

	"github.com/spf13/cobra"
)

// Version information - set at build time via -ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configFile string
	itemsFile  string
)

var rootCmd = &cobra.Command{
	Use:   "gantt [FILE]",
	Short: "Terminal timeline with lane packing and mouse editing",
	Long: `gantt shows dated items as bars on a scrollable timeline. Items that
overlap are packed into as few lanes as possible. Drag a bar to move it,
drag its [ or ] edge to change the start or end, click to see details and
double click to rename.

FILE may be JSON, YAML or CSV with id, start, end and name fields. Without a
file the items_file from the config is used, or a built-in sample.

Changes made in the TUI live for the session only.`,
	Example: `  gantt plan.yaml
  gantt --config ./gantt.yaml --file plan.json
  gantt lanes plan.csv --min-gap 2
  gantt export plan.json --format svg --output plan.svg`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/gantt/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&itemsFile, "file", "", "items file (json, yaml or csv)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.Log.Level, cfg.Log.Format, cfg.LogPath())
	if err != nil {
		return err
	}
	defer closeLog()

	path := itemsPath(args, cfg)
	items, title, err := loadItems(path)
	if err != nil {
		return err
	}

	st, err := store.New(items)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	slog.Info("starting", "version", version, "items", st.Len(), "file", path)

	if err := ui.Run(st, ui.NewStyles(cfg), ui.NewAppConfig(cfg, title)); err != nil {
		return fmt.Errorf("run app: %w", err)
	}
	return nil
}

// loadConfig reads --config when given, otherwise the default location.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configFile != "" {
		cfg, err = config.LoadFile(config.ExpandHome(configFile))
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// itemsPath picks the items file: the argument, then --file, then the
// config. Empty means the built-in sample.
func itemsPath(args []string, cfg *config.Config) string {
	switch {
	case len(args) > 0:
		return config.ExpandHome(args[0])
	case itemsFile != "":
		return config.ExpandHome(itemsFile)
	default:
		return cfg.ItemsPath()
	}
}

// loadItems reads path, or returns the sample items when path is empty.
// title names the source in the title bar.
func loadItems(path string) (items []timeline.Item, title string, err error) {
	if path == "" {
		return importer.Sample(), "sample", nil
	}
	items, err = importer.LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	return items, filepath.Base(path), nil
}

// setupLogging points the default slog logger at path. The TUI owns the
// terminal, so without a path logs are discarded.
func setupLogging(level, format, path string) (func(), error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	slog.SetDefault(slog.New(newLogHandler(f, level, format)))
	return func() { _ = f.Close() }, nil
}

func newLogHandler(w io.Writer, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.ToLower(format) == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
