package sim

import (
	"fmt"
	"time"
)

// Default tick pacing.
const (
	DefaultDelayInit = 200 * time.Millisecond
	DefaultDelayMin  = 50 * time.Millisecond
	DefaultDelayMax  = time.Second
	DefaultDelayStep = 50 * time.Millisecond
)

// Config controls tick pacing and termination.
type Config struct {
	DelayInit time.Duration
	DelayMin  time.Duration
	DelayMax  time.Duration
	DelayStep time.Duration

	// StopWhenStable ends the run once a generation leaves every cell
	// unchanged. Off by default: only the quit key stops the run.
	StopWhenStable bool
}

// DefaultConfig returns the classic pacing: start at 200ms, adjust in 50ms
// steps between 50ms and 1s.
func DefaultConfig() Config {
	return Config{
		DelayInit: DefaultDelayInit,
		DelayMin:  DefaultDelayMin,
		DelayMax:  DefaultDelayMax,
		DelayStep: DefaultDelayStep,
	}
}

// Validate checks that the delay bounds are usable.
func (c Config) Validate() error {
	if c.DelayMin <= 0 {
		return fmt.Errorf("sim: delay min must be positive, got %v", c.DelayMin)
	}
	if c.DelayMax < c.DelayMin {
		return fmt.Errorf("sim: delay max %v is below min %v", c.DelayMax, c.DelayMin)
	}
	if c.DelayStep <= 0 {
		return fmt.Errorf("sim: delay step must be positive, got %v", c.DelayStep)
	}
	if c.DelayInit < c.DelayMin || c.DelayInit > c.DelayMax {
		return fmt.Errorf("sim: initial delay %v outside [%v, %v]", c.DelayInit, c.DelayMin, c.DelayMax)
	}
	return nil
}
