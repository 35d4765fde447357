// Package config handles configuration loading and defaults for gantt.
// Configuration is loaded from XDG-compliant paths (typically ~/.config/gantt/config.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gantt/internal/fsutil"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// ItemsFile is loaded when no file is given on the command line
	ItemsFile string `yaml:"items_file,omitempty"`

	// Theme customizes the visual appearance
	Theme ThemeConfig `yaml:"theme,omitempty"`

	// Keys customizes keyboard shortcuts
	Keys KeysConfig `yaml:"keys,omitempty"`

	// View controls zoom, padding and lane spacing
	View ViewConfig `yaml:"view,omitempty"`

	// Interaction tunes drag and click handling
	Interaction InteractionConfig `yaml:"interaction,omitempty"`

	// Log configures the debug log
	Log LogConfig `yaml:"log,omitempty"`
}

// ThemeConfig defines color and style settings.
type ThemeConfig struct {
	// Primary color for bars (hex, e.g., "#FF5733")
	Primary string `yaml:"primary,omitempty"`

	// Accent color for selection and drafts (hex)
	Accent string `yaml:"accent,omitempty"`

	// Muted color for the ruler and secondary text (hex)
	Muted string `yaml:"muted,omitempty"`

	// Background color (hex)
	Background string `yaml:"background,omitempty"`

	// Text color (hex)
	Text string `yaml:"text,omitempty"`
}

// KeysConfig defines customizable keyboard shortcuts.
// Each field accepts a comma-separated list of key bindings.
// Examples: "q,ctrl+c", "+,=", "h,left"
type KeysConfig struct {
	Quit string `yaml:"quit,omitempty"` // default: "q,ctrl+c"
	Help string `yaml:"help,omitempty"` // default: "?"

	// Navigation keys
	ScrollLeft  string `yaml:"scroll_left,omitempty"`  // default: "h,left"
	ScrollRight string `yaml:"scroll_right,omitempty"` // default: "l,right"
	Up          string `yaml:"up,omitempty"`           // default: "k,up"
	Down        string `yaml:"down,omitempty"`         // default: "j,down"
	Today       string `yaml:"today,omitempty"`        // default: "t"

	// View keys
	ZoomIn      string `yaml:"zoom_in,omitempty"`      // default: "+,="
	ZoomOut     string `yaml:"zoom_out,omitempty"`     // default: "-,_"
	GapIncrease string `yaml:"gap_increase,omitempty"` // default: "]"
	GapDecrease string `yaml:"gap_decrease,omitempty"` // default: "["

	// Item keys
	NextItem string `yaml:"next_item,omitempty"` // default: "tab"
	PrevItem string `yaml:"prev_item,omitempty"` // default: "shift+tab"
	Rename   string `yaml:"rename,omitempty"`    // default: "e"
	Details  string `yaml:"details,omitempty"`   // default: "d"

	// Input keys
	Confirm string `yaml:"confirm,omitempty"` // default: "enter"
	Cancel  string `yaml:"cancel,omitempty"`  // default: "esc"
}

// ViewConfig defines zoom and layout settings.
type ViewConfig struct {
	// CellsPerDay is the initial zoom level
	CellsPerDay int `yaml:"cells_per_day,omitempty"` // default: 6

	// MinCellsPerDay and MaxCellsPerDay bound zooming
	MinCellsPerDay int `yaml:"min_cells_per_day,omitempty"` // default: 1
	MaxCellsPerDay int `yaml:"max_cells_per_day,omitempty"` // default: 20

	// PadDays is the empty margin around the items on the ruler
	PadDays int `yaml:"pad_days"` // default: 7

	// TickCells is the approximate spacing of ruler labels
	TickCells int `yaml:"tick_cells,omitempty"` // default: 16

	// LabelCells is the label width the automatic lane gap reserves
	LabelCells int `yaml:"label_cells,omitempty"` // default: 12

	// MinGapDays fixes the lane gap; unset means derived from zoom
	MinGapDays *int `yaml:"min_gap_days,omitempty"`

	// MetaCells is the bar width from which dates are shown inside bars
	MetaCells int `yaml:"meta_cells,omitempty"` // default: 40

	// MarkdownStyle is the glamour style for rendered reports
	MarkdownStyle string `yaml:"markdown_style,omitempty"` // default: "dark"
}

// InteractionConfig defines pointer handling settings.
type InteractionConfig struct {
	// DragThreshold is the distance in cells before a press becomes a drag
	DragThreshold float64 `yaml:"drag_threshold,omitempty"` // default: 4

	// ClickDelayMS is how long a click waits for a double click
	ClickDelayMS int `yaml:"click_delay_ms,omitempty"` // default: 250
}

// LogConfig defines debug logging settings.
type LogConfig struct {
	// File receives log output; empty disables logging
	File string `yaml:"file,omitempty"`

	// Level is one of debug, info, warn, error
	Level string `yaml:"level,omitempty"` // default: "info"

	// Format is text or json
	Format string `yaml:"format,omitempty"` // default: "text"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{
			Primary:    "#7C3AED", // Violet
			Accent:     "#10B981", // Emerald
			Muted:      "#6B7280", // Gray
			Background: "",        // Terminal default
			Text:       "",        // Terminal default
		},
		Keys: KeysConfig{
			// Defaults are empty strings, which means use built-in defaults
		},
		View: ViewConfig{
			CellsPerDay:    6,
			MinCellsPerDay: 1,
			MaxCellsPerDay: 20,
			PadDays:        7,
			TickCells:      16,
			LabelCells:     12,
			MinGapDays:     nil, // derived from zoom
			MetaCells:      40,
			MarkdownStyle:  "dark",
		},
		Interaction: InteractionConfig{
			DragThreshold: 4,
			ClickDelayMS:  250,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// configDir returns the configuration directory path (XDG compliant).
func configDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gantt")
	}

	// Fall back to ~/.config/gantt
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gantt")
}

// Path returns the default config file path, or "" when no home directory
// can be determined.
func Path() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads configuration from the default path, merging with defaults.
// If no config file exists, returns default configuration.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads configuration from path, merging with defaults. A missing
// file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Parse YAML and merge with defaults
	var userCfg Config
	if err := yaml.Unmarshal(data, &userCfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	var doc yaml.Node
	_ = yaml.Unmarshal(data, &doc) // best-effort; fall back to conservative merge if this fails

	// Merge user config with defaults (presence-aware for zero-able numbers)
	cfg.mergeFromYAML(&userCfg, &doc)
	cfg.normalize()

	return cfg, nil
}

// mergeNonEmpty applies non-empty values from other to c.
// It intentionally does not touch values where zero is meaningful (those require presence-aware merging).
func (c *Config) mergeNonEmpty(other *Config) {
	mergeString(&c.ItemsFile, other.ItemsFile)

	// Theme merging
	mergeString(&c.Theme.Primary, other.Theme.Primary)
	mergeString(&c.Theme.Accent, other.Theme.Accent)
	mergeString(&c.Theme.Muted, other.Theme.Muted)
	mergeString(&c.Theme.Background, other.Theme.Background)
	mergeString(&c.Theme.Text, other.Theme.Text)

	// Keys merging
	mergeString(&c.Keys.Quit, other.Keys.Quit)
	mergeString(&c.Keys.Help, other.Keys.Help)
	mergeString(&c.Keys.ScrollLeft, other.Keys.ScrollLeft)
	mergeString(&c.Keys.ScrollRight, other.Keys.ScrollRight)
	mergeString(&c.Keys.Up, other.Keys.Up)
	mergeString(&c.Keys.Down, other.Keys.Down)
	mergeString(&c.Keys.Today, other.Keys.Today)
	mergeString(&c.Keys.ZoomIn, other.Keys.ZoomIn)
	mergeString(&c.Keys.ZoomOut, other.Keys.ZoomOut)
	mergeString(&c.Keys.GapIncrease, other.Keys.GapIncrease)
	mergeString(&c.Keys.GapDecrease, other.Keys.GapDecrease)
	mergeString(&c.Keys.NextItem, other.Keys.NextItem)
	mergeString(&c.Keys.PrevItem, other.Keys.PrevItem)
	mergeString(&c.Keys.Rename, other.Keys.Rename)
	mergeString(&c.Keys.Details, other.Keys.Details)
	mergeString(&c.Keys.Confirm, other.Keys.Confirm)
	mergeString(&c.Keys.Cancel, other.Keys.Cancel)

	// View
	mergeInt(&c.View.CellsPerDay, other.View.CellsPerDay)
	mergeInt(&c.View.MinCellsPerDay, other.View.MinCellsPerDay)
	mergeInt(&c.View.MaxCellsPerDay, other.View.MaxCellsPerDay)
	mergeInt(&c.View.TickCells, other.View.TickCells)
	mergeInt(&c.View.LabelCells, other.View.LabelCells)
	mergeInt(&c.View.MetaCells, other.View.MetaCells)
	mergeString(&c.View.MarkdownStyle, other.View.MarkdownStyle)

	// Interaction
	if other.Interaction.DragThreshold > 0 {
		c.Interaction.DragThreshold = other.Interaction.DragThreshold
	}
	mergeInt(&c.Interaction.ClickDelayMS, other.Interaction.ClickDelayMS)

	// Log
	mergeString(&c.Log.File, other.Log.File)
	mergeString(&c.Log.Level, other.Log.Level)
	mergeString(&c.Log.Format, other.Log.Format)
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func mergeInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

func (c *Config) mergeFromYAML(other *Config, doc *yaml.Node) {
	// First apply all non-empty string-ish merges.
	c.mergeNonEmpty(other)

	// Fall back to conservative behavior if we can't inspect presence.
	if doc == nil || len(doc.Content) == 0 {
		if other.View.MinGapDays != nil {
			c.View.MinGapDays = other.View.MinGapDays
		}
		return
	}

	// Now re-apply values where zero is meaningful only when present in YAML.
	if yamlHasPath(doc, "view", "pad_days") && other.View.PadDays >= 0 {
		c.View.PadDays = other.View.PadDays
	}
	if yamlHasPath(doc, "view", "min_gap_days") {
		c.View.MinGapDays = other.View.MinGapDays
	}
}

// normalize clamps values into usable ranges.
func (c *Config) normalize() {
	v := &c.View
	if v.MinCellsPerDay < 1 {
		v.MinCellsPerDay = 1
	}
	if v.MaxCellsPerDay < v.MinCellsPerDay {
		v.MaxCellsPerDay = v.MinCellsPerDay
	}
	v.CellsPerDay = min(max(v.CellsPerDay, v.MinCellsPerDay), v.MaxCellsPerDay)
	if v.MinGapDays != nil && *v.MinGapDays < 0 {
		zero := 0
		v.MinGapDays = &zero
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

func yamlHasPath(doc *yaml.Node, path ...string) bool {
	if doc == nil || len(path) == 0 {
		return false
	}

	// Document -> root mapping.
	n := doc
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	for _, key := range path {
		if n == nil || n.Kind != yaml.MappingNode {
			return false
		}
		var next *yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			v := n.Content[i+1]
			if k.Kind == yaml.ScalarNode && k.Value == key {
				next = v
				break
			}
		}
		if next == nil {
			return false
		}
		n = next
	}
	return true
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveFile(Path())
}

// SaveFile writes the configuration to path atomically.
func (c *Config) SaveFile(path string) error {
	if path == "" {
		return nil
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}

	return fsutil.WriteFileAtomic(path, data, 0600)
}

// ItemsPath returns the items file with a leading ~ expanded.
func (c *Config) ItemsPath() string {
	return ExpandHome(c.ItemsFile)
}

// LogPath returns the log file with a leading ~ expanded.
func (c *Config) LogPath() string {
	return ExpandHome(c.Log.File)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}

	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			trimmed := strings.TrimPrefix(path, "~/")
			trimmed = strings.TrimPrefix(trimmed, `~\`)
			return filepath.Join(home, trimmed)
		}
	}
	return path
}

// GapDays returns the lane gap for the given zoom: the fixed value when
// configured, otherwise derived from the label width.
func (v ViewConfig) GapDays(cellsPerDay int) int {
	if v.MinGapDays != nil {
		return max(0, *v.MinGapDays)
	}
	if cellsPerDay <= 0 {
		return 0
	}
	return max(0, v.LabelCells/cellsPerDay)
}
