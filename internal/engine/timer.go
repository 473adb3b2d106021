package engine

// Countdown is a frame counter owned by one mechanic (invincibility, freeze,
// popup). The zero value is inactive.
type Countdown struct {
	remaining int
	total     int
}

// Start arms the countdown for n frames. n <= 0 stops it.
func (c *Countdown) Start(n int) {
	if n <= 0 {
		c.Stop()
		return
	}
	c.remaining = n
	c.total = n
}

// Stop clears the countdown without firing.
func (c *Countdown) Stop() {
	c.remaining = 0
	c.total = 0
}

// Tick advances one frame. It returns true exactly once, on the frame the
// counter reaches zero.
func (c *Countdown) Tick() bool {
	if c.remaining <= 0 {
		return false
	}
	c.remaining--
	return c.remaining == 0
}

// Active reports whether frames remain.
func (c Countdown) Active() bool { return c.remaining > 0 }

// Remaining returns the frames left.
func (c Countdown) Remaining() int { return c.remaining }

// Elapsed returns the frames since Start.
func (c Countdown) Elapsed() int { return c.total - c.remaining }

// Fraction returns remaining/total in [0, 1], 0 when inactive.
func (c Countdown) Fraction() float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.remaining) / float64(c.total)
}
