package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlay renders a help screen
type HelpOverlay struct {
	width  int
	height int
	styles *Styles
	keys   KeyMap
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay(styles *Styles, keys KeyMap) *HelpOverlay {
	return &HelpOverlay{
		styles: styles,
		keys:   keys,
	}
}

// SetSize sets the overlay dimensions
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	overlayWidth := 60
	if h.width > 0 {
		overlayWidth = min(60, max(20, h.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(h.styles.ColorPrimary).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(h.styles.ColorPrimary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(h.styles.ColorAccent).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(h.styles.ColorWarning).
		Width(18)

	descStyle := lipgloss.NewStyle().
		Foreground(h.styles.ColorText)

	mutedStyle := lipgloss.NewStyle().
		Foreground(h.styles.ColorTextMuted).
		Italic(true)

	line := func(k, desc string) string {
		return keyStyle.Render(k) + descStyle.Render(desc) + "\n"
	}
	bound := func(bindings ...key.Binding) string {
		var keys []string
		for _, b := range bindings {
			keys = append(keys, b.Help().Key)
		}
		return strings.Join(keys, " / ")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("gantt - Keys and Mouse"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigate"))
	b.WriteString("\n")
	b.WriteString(line(bound(h.keys.ScrollLeft, h.keys.ScrollRight), "Scroll earlier/later"))
	b.WriteString(line(bound(h.keys.Up, h.keys.Down), "Scroll lanes"))
	b.WriteString(line(bound(h.keys.Today), "Jump to today"))

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("View"))
	b.WriteString("\n")
	b.WriteString(line(bound(h.keys.ZoomIn, h.keys.ZoomOut), "Zoom in/out"))
	b.WriteString(line(bound(h.keys.GapDecrease, h.keys.GapIncrease), "Lane gap"))

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Items"))
	b.WriteString("\n")
	b.WriteString(line(bound(h.keys.NextItem, h.keys.PrevItem), "Select next/previous"))
	b.WriteString(line(bound(h.keys.Rename), "Rename selected"))
	b.WriteString(line(bound(h.keys.Details), "Show details"))

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Mouse"))
	b.WriteString("\n")
	b.WriteString(line("Drag bar", "Move by whole days"))
	b.WriteString(line("Drag [ or ]", "Change start/end"))
	b.WriteString(line("Click", "Select and show details"))
	b.WriteString(line("Double click", "Rename in place"))
	b.WriteString(line("Wheel", "Scroll lanes (shift: time)"))

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Input Mode"))
	b.WriteString("\n")
	b.WriteString(line("Enter", "Save"))
	b.WriteString(line("Esc", "Cancel"))

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press ? or Esc to close"))

	content := overlayStyle.Render(b.String())

	return lipgloss.Place(
		h.width,
		h.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
