// Package ui provides the terminal interface for gantt.
// This file defines key bindings using the Bubble Tea key package for
// type-safe key matching, help text generation, and customization.
package ui

import (
	"strings"

	"gantt/internal/config"

	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// Helpers
// =============================================================================

// parseKeys splits a comma-separated string into individual keys.
// If the input is empty, returns the default keys.
func parseKeys(customKeys string, defaultKeys ...string) []string {
	if customKeys == "" {
		return defaultKeys
	}
	keys := strings.Split(customKeys, ",")
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		trimmed := strings.TrimSpace(k)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultKeys
	}
	return result
}

// helpLabel shows the first configured key in help text.
func helpLabel(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

func binding(custom, desc string, defaults ...string) key.Binding {
	keys := parseKeys(custom, defaults...)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpLabel(keys), desc),
	)
}

// =============================================================================
// Timeline Keys
// =============================================================================

// KeyMap defines the keys available while browsing the timeline.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding

	ScrollLeft  key.Binding
	ScrollRight key.Binding
	Up          key.Binding
	Down        key.Binding
	Today       key.Binding

	ZoomIn      key.Binding
	ZoomOut     key.Binding
	GapIncrease key.Binding
	GapDecrease key.Binding

	NextItem key.Binding
	PrevItem key.Binding
	Rename   key.Binding
	Details  key.Binding
}

// DefaultKeyMap returns the default timeline key bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(&config.KeysConfig{})
}

// NewKeyMap creates timeline key bindings from config.
func NewKeyMap(cfg *config.KeysConfig) KeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return KeyMap{
		Quit: binding(cfg.Quit, "quit", "q", "ctrl+c"),
		Help: binding(cfg.Help, "help", "?"),

		ScrollLeft:  binding(cfg.ScrollLeft, "earlier", "h", "left"),
		ScrollRight: binding(cfg.ScrollRight, "later", "l", "right"),
		Up:          binding(cfg.Up, "lane up", "k", "up"),
		Down:        binding(cfg.Down, "lane down", "j", "down"),
		Today:       binding(cfg.Today, "today", "t"),

		ZoomIn:      binding(cfg.ZoomIn, "zoom in", "+", "="),
		ZoomOut:     binding(cfg.ZoomOut, "zoom out", "-", "_"),
		GapIncrease: binding(cfg.GapIncrease, "gap +", "]"),
		GapDecrease: binding(cfg.GapDecrease, "gap -", "["),

		NextItem: binding(cfg.NextItem, "next item", "tab"),
		PrevItem: binding(cfg.PrevItem, "prev item", "shift+tab"),
		Rename:   binding(cfg.Rename, "rename", "e"),
		Details:  binding(cfg.Details, "details", "d"),
	}
}

// ShortHelp implements help.KeyMap for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ScrollLeft, k.ScrollRight, k.ZoomIn, k.ZoomOut, k.NextItem, k.Rename, k.Details, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ScrollLeft, k.ScrollRight, k.Up, k.Down, k.Today},
		{k.ZoomIn, k.ZoomOut, k.GapIncrease, k.GapDecrease},
		{k.NextItem, k.PrevItem, k.Rename, k.Details},
		{k.Help, k.Quit},
	}
}

// =============================================================================
// Input Keys (inline rename and the detail panel)
// =============================================================================

// InputKeyMap defines keys for text input mode.
type InputKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultInputKeyMap returns the default input key bindings.
func DefaultInputKeyMap() InputKeyMap {
	return NewInputKeyMap(&config.KeysConfig{})
}

// NewInputKeyMap creates input key bindings from config.
func NewInputKeyMap(cfg *config.KeysConfig) InputKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return InputKeyMap{
		Confirm: binding(cfg.Confirm, "save", "enter"),
		Cancel:  binding(cfg.Cancel, "cancel", "esc"),
	}
}

// =============================================================================
// Help Overlay Keys
// =============================================================================

// HelpKeyMap defines keys for the help overlay.
type HelpKeyMap struct {
	Close key.Binding
}

// DefaultHelpKeyMap returns the default help overlay key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Close: key.NewBinding(
			key.WithKeys("?", "esc", "q", "enter", " "),
			key.WithHelp("any key", "close"),
		),
	}
}
