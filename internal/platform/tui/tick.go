// Package tui provides the Bubble Tea host for the slicer: the frame loop,
// mouse and key mapping, menus, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the render rate used when none is configured.
const DefaultFPS = 60

// FrameMsg asks the play scene to render one frame. Gen ties the message to
// the round that scheduled it so frames from an abandoned round are dropped.
type FrameMsg struct {
	Time time.Time
	Gen  int
}

// frameCmd returns a command that sends a FrameMsg after one frame interval.
func frameCmd(fps, gen int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t, Gen: gen}
	})
}
