// Package tui provides the Bubble Tea frontend for the simulation and the
// run history browser.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when the pause after a generation has elapsed.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after delay.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
