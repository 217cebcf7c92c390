// Package tui runs brickball in the terminal with Bubble Tea.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdWindow converts the key-repeat grace period to ticks.
func holdWindow(tickRate int) int {
	const grace = 150 * time.Millisecond
	return int(grace * time.Duration(max(tickRate, 1)) / time.Second)
}
