package tui

import "github.com/vovakirdan/softskills-arcade/internal/core"

// HeldInput rebuilds held-key state from a terminal, which only reports
// presses (and auto-repeats). A movement press stays held for a window of
// frames and is refreshed by each repeat; one-shot actions last one frame.
type HeldInput struct {
	window int
	held   map[core.Action]int
	once   core.InputFrame
}

// NewHeldInput creates input state holding movement for window frames.
func NewHeldInput(window int) *HeldInput {
	if window < 1 {
		window = 1
	}
	return &HeldInput{
		window: window,
		held:   make(map[core.Action]int),
		once:   core.NewInputFrame(),
	}
}

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// Press records a key press.
func (h *HeldInput) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !a.Continuous() {
		h.once.Set(a)
		return
	}
	// Reversing direction releases the opposite key at once.
	delete(h.held, opposite[a])
	h.held[a] = h.window
}

// Frame returns the actions active on the current frame.
func (h *HeldInput) Frame() core.InputFrame {
	f := h.once.Clone()
	for a, n := range h.held {
		if n > 0 {
			f.Set(a)
		}
	}
	return f
}

// Advance ends the frame: one-shot actions clear and held windows shrink.
func (h *HeldInput) Advance() {
	h.once.Clear()
	for a, n := range h.held {
		if n <= 1 {
			delete(h.held, a)
			continue
		}
		h.held[a] = n - 1
	}
}

// Release drops every held and pending action.
func (h *HeldInput) Release() {
	h.once.Clear()
	clear(h.held)
}
