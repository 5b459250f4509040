// Package tui runs Munchkin in a terminal with Bubble Tea: the play loop with
// held-key input, the title screen, the difficulty picker and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 50

// TickMsg advances the game by one frame.
type TickMsg time.Time

// tickInterval is the frame period for rate frames per second. Non-positive
// rates fall back to the default.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = defaultTickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
