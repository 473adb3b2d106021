package engine

import "github.com/vovakirdan/softskills-arcade/internal/core"

// InputSource is polled once per frame for the logical control set.
// core.InputFrame satisfies it.
type InputSource interface {
	Has(a core.Action) bool
}

// Axis returns the desired (dx, dy) from the four movement actions. Opposing
// actions cancel out.
func Axis(in InputSource) (dx, dy float64) {
	if in.Has(core.ActionUp) {
		dy--
	}
	if in.Has(core.ActionDown) {
		dy++
	}
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	return dx, dy
}
