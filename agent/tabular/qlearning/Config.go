package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/agent"
)

func init() {
	// Register Config type so that it can be typed using
	// agent.TypedConfig to help with serialization/deserialization.
	agent.Register(agent.TabularQLearning, Config{})
}

const (
	DefaultLearningRate float64 = 0.4
	DefaultDiscount     float64 = 0.3
)

// Config represents a configuration for the QLearning agent
type Config struct {
	LearningRate float64 // α
	Discount     float64 // γ

	// Explorer determines how actions are selected. The zero value is
	// agent.Greedy.
	Explorer agent.ExplorerType

	// Used by agent.EGreedy only. An EpsilonDecay of 0 keeps ε
	// constant.
	Epsilon      float64
	EpsilonDecay float64
	MinEpsilon   float64

	// Used by agent.Softmax only
	Temperature float64
}

// DefaultConfig returns the reference tuning of the agent: α = 0.4,
// γ = 0.3, exploring only in states without a policy entry
func DefaultConfig() Config {
	return Config{
		LearningRate: DefaultLearningRate,
		Discount:     DefaultDiscount,
		Explorer:     agent.Greedy,
	}
}

// CreateAgent creates the agent from the Config
func (c Config) CreateAgent(seed uint64) (agent.Agent, error) {
	return New(c, seed)
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*QLearning)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("validate: learning rate must be in (0, 1], "+
			"have %v", c.LearningRate)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount must be in [0, 1], have %v",
			c.Discount)
	}

	switch c.explorer() {
	case agent.Greedy:
	case agent.EGreedy:
		if c.Epsilon < 0 || c.Epsilon > 1 {
			return fmt.Errorf("validate: epsilon must be in [0, 1], have %v",
				c.Epsilon)
		}
		if c.EpsilonDecay < 0 || c.EpsilonDecay > 1 {
			return fmt.Errorf("validate: epsilon decay must be in [0, 1], "+
				"have %v", c.EpsilonDecay)
		}
		if c.MinEpsilon < 0 || c.MinEpsilon > c.Epsilon {
			return fmt.Errorf("validate: minimum epsilon must be in "+
				"[0, %v], have %v", c.Epsilon, c.MinEpsilon)
		}
	case agent.Softmax:
		if c.Temperature <= 0 {
			return fmt.Errorf("validate: temperature must be positive, "+
				"have %v", c.Temperature)
		}
	default:
		return fmt.Errorf("validate: no such explorer %q", c.Explorer)
	}

	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.TabularQLearning
}

func (c Config) explorer() agent.ExplorerType {
	if c.Explorer == "" {
		return agent.Greedy
	}
	return c.Explorer
}

func (c Config) decay() float64 {
	if c.EpsilonDecay == 0 {
		return 1.0
	}
	return c.EpsilonDecay
}
