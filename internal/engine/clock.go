package engine

// FrameClock counts simulated frames. A paused clock skips the update without
// banking the skipped time, so unpausing never triggers a catch-up burst.
type FrameClock struct {
	TickRate int
	frame    uint64
	paused   bool
}

// NewFrameClock creates a clock at tickRate frames per second (60 if <= 0).
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{TickRate: tickRate}
}

// Tick is called once per host frame. It returns false while paused; the
// caller must then skip its update phase.
func (c *FrameClock) Tick() bool {
	if c.paused {
		return false
	}
	c.frame++
	return true
}

// Dt returns the simulated seconds per frame.
func (c *FrameClock) Dt() float64 {
	return 1 / float64(c.TickRate)
}

// Frame returns the number of updated frames.
func (c *FrameClock) Frame() uint64 { return c.frame }

// Paused reports whether updates are being skipped.
func (c *FrameClock) Paused() bool { return c.paused }

// SetPaused sets the pause flag.
func (c *FrameClock) SetPaused(p bool) { c.paused = p }

// Toggle flips the pause flag.
func (c *FrameClock) Toggle() { c.paused = !c.paused }

// Reset zeroes the frame counter and clears pause.
func (c *FrameClock) Reset() {
	c.frame = 0
	c.paused = false
}

// FramesFor converts a duration in milliseconds to whole frames (at least 1).
func (c *FrameClock) FramesFor(ms int) int {
	n := ms * c.TickRate / 1000
	if n < 1 {
		return 1
	}
	return n
}
