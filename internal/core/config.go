package core

import "time"

// RuntimeConfig contains configuration passed to render backends at creation.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Tick    time.Duration // Length of one game tick
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Tick:    10 * time.Millisecond,
	}
}

// TickRate returns how many ticks fit in one second, at least 1.
func (c RuntimeConfig) TickRate() int {
	if c.Tick <= 0 {
		return 1
	}
	rate := int(time.Second / c.Tick)
	if rate < 1 {
		return 1
	}
	return rate
}
