package tui

import (
	"time"

	"github.com/vovakirdan/arcade-shooter/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// direction counts as held for a short window after each event. The first
// window covers the keyboard's initial repeat delay.
const (
	holdFirst  = 500 * time.Millisecond
	holdRepeat = 120 * time.Millisecond
)

// heldKeys emulates key-held state for Left and Right.
type heldKeys struct {
	left, right int // ticks remaining
	first       int
	repeat      int
}

func newHeldKeys(tickRate int) heldKeys {
	return heldKeys{
		first:  durationTicks(holdFirst, tickRate),
		repeat: durationTicks(holdRepeat, tickRate),
	}
}

// durationTicks converts a duration to a tick count, at least one.
func durationTicks(d time.Duration, tickRate int) int {
	n := int(d * time.Duration(tickRate) / time.Second)
	return max(n, 1)
}

// press records a direction key event. The opposite direction is released.
func (h *heldKeys) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.window(h.left)
		h.right = 0
	case core.ActionRight:
		h.right = h.window(h.right)
		h.left = 0
	}
}

func (h *heldKeys) window(remaining int) int {
	if remaining > 0 {
		return h.repeat
	}
	return h.first
}

// apply sets held directions on the frame and counts the windows down.
func (h *heldKeys) apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}

// release drops all held state.
func (h *heldKeys) release() {
	h.left, h.right = 0, 0
}
