package sign

import "time"

// DefaultCooldown is the minimum time between consecutive emissions.
const DefaultCooldown = 1500 * time.Millisecond

// Gate is the refractory timer between sign emissions. While a tick
// falls inside the cooldown window the caller skips the whole tick,
// classification and buffer update included, not just the emission.
type Gate struct {
	cooldown time.Duration
	last     time.Time
}

// NewGate creates a Gate with the given cooldown duration.
func NewGate(cooldown time.Duration) *Gate {
	return &Gate{cooldown: cooldown}
}

// Ready reports whether the cooldown has elapsed. The zero last-emission
// time acts as a sentinel so the first emission is never delayed.
func (g *Gate) Ready(now time.Time) bool {
	if g.last.IsZero() {
		return true
	}
	return now.Sub(g.last) >= g.cooldown
}

// Mark records an emission at the given time.
func (g *Gate) Mark(now time.Time) {
	g.last = now
}

// Remaining returns how long until the gate reopens, or zero when ready.
func (g *Gate) Remaining(now time.Time) time.Duration {
	if g.last.IsZero() {
		return 0
	}
	remaining := g.cooldown - now.Sub(g.last)
	if remaining < 0 {
		return 0
	}
	return remaining
}
