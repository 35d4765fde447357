package ui

import (
	"gantt/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds all application styles, initialized with theme configuration.
type Styles struct {
	// Colors
	ColorPrimary   lipgloss.Color
	ColorAccent    lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorDanger    lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorBg        lipgloss.Color
	ColorBgLight   lipgloss.Color
	ColorText      lipgloss.Color
	ColorTextMuted lipgloss.Color

	// Chrome
	TitleStyle     lipgloss.Style
	DateStyle      lipgloss.Style
	StatLabelStyle lipgloss.Style
	StatValueStyle lipgloss.Style
	GutterStyle    lipgloss.Style

	// Ruler
	RulerLabelStyle lipgloss.Style
	RulerAxisStyle  lipgloss.Style
	TodayStyle      lipgloss.Style

	// Bars
	BarStyle         lipgloss.Style
	BarSelectedStyle lipgloss.Style
	BarDraftStyle    lipgloss.Style
	BarHandleStyle   lipgloss.Style
	BarMetaStyle     lipgloss.Style
	BarEditStyle     lipgloss.Style

	// Detail panel
	PanelStyle      lipgloss.Style
	PanelTitleStyle lipgloss.Style
	PanelLabelStyle lipgloss.Style
	PanelCloseStyle lipgloss.Style

	HelpStyle    lipgloss.Style
	HelpKeyStyle lipgloss.Style

	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	InputPromptStyle lipgloss.Style
	InputTextStyle   lipgloss.Style
}

// NewStyles creates a new Styles instance from the given config.
func NewStyles(cfg *config.Config) *Styles {
	return NewStylesFromTheme(&cfg.Theme)
}

// NewStylesFromTheme creates a new Styles instance from a ThemeConfig.
// If a theme color is empty, it uses the appropriate default.
func NewStylesFromTheme(theme *config.ThemeConfig) *Styles {
	s := &Styles{}

	s.ColorPrimary = colorOrDefault(theme.Primary, "#7C3AED")
	s.ColorAccent = colorOrDefault(theme.Accent, "#10B981")
	s.ColorMuted = colorOrDefault(theme.Muted, "#6B7280")

	// Fixed semantic colors (not configurable from theme)
	s.ColorDanger = lipgloss.Color("#EF4444")
	s.ColorWarning = lipgloss.Color("#F59E0B")
	s.ColorSuccess = lipgloss.Color("#10B981")

	s.ColorBg = colorOrDefault(theme.Background, "#1F2937")
	s.ColorBgLight = lipgloss.Color("#374151")
	s.ColorText = colorOrDefault(theme.Text, "#F9FAFB")
	s.ColorTextMuted = lipgloss.Color("#9CA3AF")

	s.initComponentStyles()

	return s
}

// colorOrDefault returns the lipgloss.Color from hex string, or default if empty.
func colorOrDefault(hex, defaultHex string) lipgloss.Color {
	if hex != "" {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(defaultHex)
}

func (s *Styles) initComponentStyles() {
	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorText).
		Background(s.ColorPrimary).
		Padding(0, 1)

	s.DateStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.StatLabelStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.StatValueStyle = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Bold(true)

	s.GutterStyle = lipgloss.NewStyle().
		Foreground(s.ColorMuted)

	// Ruler
	s.RulerLabelStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.RulerAxisStyle = lipgloss.NewStyle().
		Foreground(s.ColorMuted)

	s.TodayStyle = lipgloss.NewStyle().
		Foreground(s.ColorWarning).
		Bold(true)

	// Bars
	s.BarStyle = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Background(s.ColorPrimary)

	s.BarSelectedStyle = lipgloss.NewStyle().
		Foreground(s.ColorBg).
		Background(s.ColorAccent).
		Bold(true)

	s.BarDraftStyle = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Background(s.ColorBgLight).
		Italic(true)

	s.BarHandleStyle = lipgloss.NewStyle().
		Foreground(s.ColorWarning).
		Background(s.ColorPrimary).
		Bold(true)

	s.BarMetaStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Background(s.ColorPrimary)

	s.BarEditStyle = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Background(s.ColorBgLight)

	// Detail panel
	s.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorPrimary).
		Padding(0, 1)

	s.PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorPrimary)

	s.PanelLabelStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Width(8)

	s.PanelCloseStyle = lipgloss.NewStyle().
		Foreground(s.ColorDanger)

	// Help bar
	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.HelpKeyStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent).
		Bold(true)

	// Status messages
	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.ColorSuccess).
		Italic(true)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.ColorDanger).
		Bold(true)

	// Input
	s.InputPromptStyle = lipgloss.NewStyle().
		Foreground(s.ColorPrimary).
		Bold(true)

	s.InputTextStyle = lipgloss.NewStyle().
		Foreground(s.ColorText)
}

// RenderHelp renders help text with key bindings using the given styles.
func (s *Styles) RenderHelp(keys ...string) string {
	var result string
	for i := 0; i+1 < len(keys); i += 2 {
		if i > 0 {
			result += "  "
		}
		result += s.HelpKeyStyle.Render("["+keys[i]+"]") + " " + s.HelpStyle.Render(keys[i+1])
	}
	return result
}
