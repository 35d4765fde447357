// Package ui provides the terminal interface for gantt.
// This file contains tea.Cmd factories. Each command returns a message
// type defined in messages.go.
package ui

import (
	"time"

	"gantt/internal/interact"

	tea "github.com/charmbracelet/bubbletea"
)

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// selectTimerCmd fires the bar's pending selection after the timer delay.
func selectTimerCmd(itemID string, timer *interact.SelectTimer) tea.Cmd {
	if timer == nil {
		return nil
	}
	token := timer.Token
	return tea.Tick(timer.Delay, func(time.Time) tea.Msg {
		return selectTimerMsg{itemID: itemID, token: token}
	})
}

// editFocusCmd defers focusing the inline rename input to the next update.
func editFocusCmd(itemID string) tea.Cmd {
	return func() tea.Msg {
		return editFocusMsg{itemID: itemID}
	}
}
