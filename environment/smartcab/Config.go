package smartcab

import "fmt"

// Default physical parameters of the smartcab world
const (
	DefaultWidth          int = 8
	DefaultHeight         int = 6
	DefaultDummyAgents    int = 3
	DefaultDeadlineFactor int = 5
	DefaultMinDistance    int = 4
	DefaultHardTimeLimit  int = -100
	DefaultMinLightPeriod int = 3
	DefaultMaxLightPeriod int = 5
)

// Config describes the physical parameters of a smartcab world and the
// reward scheme of its Reach task
type Config struct {
	Width, Height int
	DummyAgents   int

	// The deadline of a trial is DeadlineFactor times the distance
	// between the start and destination. Start and destination are at
	// least MinDistance apart.
	DeadlineFactor int
	MinDistance    int

	// If EnforceDeadline is false, trials only end on arrival or once
	// the deadline reaches HardTimeLimit.
	EnforceDeadline bool
	HardTimeLimit   int

	MinLightPeriod, MaxLightPeriod int

	Rewards Rewards
}

// DefaultConfig returns the default smartcab configuration
func DefaultConfig() Config {
	return Config{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		DummyAgents:     DefaultDummyAgents,
		DeadlineFactor:  DefaultDeadlineFactor,
		MinDistance:     DefaultMinDistance,
		EnforceDeadline: true,
		HardTimeLimit:   DefaultHardTimeLimit,
		MinLightPeriod:  DefaultMinLightPeriod,
		MaxLightPeriod:  DefaultMaxLightPeriod,
		Rewards:         DefaultRewards(),
	}
}

// Validate returns an error if the Config is invalid
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("validate: grid must be non-empty, have %dx%d",
			c.Width, c.Height)
	}
	if c.DummyAgents < 0 {
		return fmt.Errorf("validate: dummy agents must be non-negative, "+
			"have %d", c.DummyAgents)
	}
	if c.DeadlineFactor <= 0 {
		return fmt.Errorf("validate: deadline factor must be positive, "+
			"have %d", c.DeadlineFactor)
	}
	if c.MinDistance < 1 {
		return fmt.Errorf("validate: minimum distance must be at least 1, "+
			"have %d", c.MinDistance)
	}
	if max := c.Width - 1 + c.Height - 1; c.MinDistance > max {
		return fmt.Errorf("validate: minimum distance %d exceeds the "+
			"largest distance %d on a %dx%d grid", c.MinDistance, max,
			c.Width, c.Height)
	}
	if c.HardTimeLimit > 0 {
		return fmt.Errorf("validate: hard time limit must be "+
			"non-positive, have %d", c.HardTimeLimit)
	}
	if c.MinLightPeriod <= 0 || c.MaxLightPeriod < c.MinLightPeriod {
		return fmt.Errorf("validate: invalid light periods [%d, %d]",
			c.MinLightPeriod, c.MaxLightPeriod)
	}
	return nil
}
