package core

import "time"

// RuntimeConfig contains settings passed from the CLI to a frontend.
type RuntimeConfig struct {
	Seed int64 // RNG seed for cherry placement; 0 means seed from the clock
}

// ResolvedSeed returns the configured seed, or a clock-based one when unset.
func (c RuntimeConfig) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
