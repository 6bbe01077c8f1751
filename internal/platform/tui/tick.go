// Package tui provides the Bubble Tea integration for Sky Jumper.
// It handles the terminal UI loop, input mapping, persistence of finished
// runs and the SSH front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame. It carries the wall-clock time the
// frame fired at; the model turns the gap between frames into fixed steps.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
