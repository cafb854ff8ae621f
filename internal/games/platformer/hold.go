package platformer

import (
	"github.com/glptrst/platform-game/internal/core"
	"github.com/glptrst/platform-game/internal/sim"
)

// holdState turns key presses into held directions. Terminals report
// presses and auto-repeat but never releases, so each press keeps its
// direction held for a number of ticks.
type holdState struct {
	left  int
	right int
	up    int
}

// press refreshes the hold timers from the actions of this tick.
// Opposite directions cancel each other.
func (h *holdState) press(in core.InputFrame, ticks int) {
	ticks = max(ticks, 1)
	if in.Has(core.ActionLeft) {
		h.left = ticks
		h.right = 0
	}
	if in.Has(core.ActionRight) {
		h.right = ticks
		h.left = 0
	}
	if in.Has(core.ActionJump) {
		h.up = ticks
	}
}

func (h *holdState) intent() sim.Intent {
	return sim.Intent{Left: h.left > 0, Right: h.right > 0, Up: h.up > 0}
}

// release counts one tick off every held direction.
func (h *holdState) release() {
	h.left = max(h.left-1, 0)
	h.right = max(h.right-1, 0)
	h.up = max(h.up-1, 0)
}
