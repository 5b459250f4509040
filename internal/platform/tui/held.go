package tui

import (
	"time"

	"github.com/vovakirdan/tui-munchkin/internal/core"
)

// defaultHoldTTL covers the pause between a key press and the terminal's
// first auto-repeat.
const defaultHoldTTL = 450 * time.Millisecond

// heldKeys turns direction key presses into held state. Terminals report
// presses only, so a key counts as held until its ttl runs out or another
// direction is pressed.
type heldKeys struct {
	ttl   time.Duration
	until map[core.Action]time.Time
}

func newHeldKeys(ttl time.Duration) heldKeys {
	return heldKeys{ttl: ttl, until: make(map[core.Action]time.Time)}
}

// press holds a direction and releases every other one.
func (h heldKeys) press(a core.Action, now time.Time) {
	for k := range h.until {
		delete(h.until, k)
	}
	h.until[a] = now.Add(h.ttl)
}

// apply sets the still-held directions on frame and forgets expired ones.
func (h heldKeys) apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.until {
		if now.Before(t) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

func (h heldKeys) release() {
	for k := range h.until {
		delete(h.until, k)
	}
}
