// Package tui provides the Bubble Tea integration for the alert console.
// It is a presentation collaborator in the engine's sense: it reads state
// snapshots to render and drives the controller's mutator surface.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg triggers a render pass against the latest engine snapshot.
type frameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// given interval. The engine runs on its own timers; this only re-renders.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// bootDoneMsg ends the boot splash.
type bootDoneMsg struct{}

func bootCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return bootDoneMsg{}
	})
}
