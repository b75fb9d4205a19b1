// Package experiment implements functionality for running an experiment
package experiment

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/samuelfneumann/smartcab/agent"
	"github.com/samuelfneumann/smartcab/agent/tabular/qlearning"
	"github.com/samuelfneumann/smartcab/environment/envconfig"
	"github.com/samuelfneumann/smartcab/experiment/tracker"
	ts "github.com/samuelfneumann/smartcab/timestep"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments send each environment TimeStep to Trackers, which cache
// the data to be later saved to disk by Save(). The Run() method will
// run all episodes until the trial limit is reached or the context is
// cancelled. The RunEpisode() function will run a single episode.
type Experiment interface {
	Run(ctx context.Context) error

	// RunEpisode returns whether the trial limit has been reached
	RunEpisode(ctx context.Context) (bool, error)

	// Tracks current timestep by sending it to Trackers
	track(ts.TimeStep)

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)
}

type Type string

const (
	OnlineExp Type = "Online"
)

// Default experiment parameters
const (
	DefaultTrials uint   = 100
	DefaultSeed   uint64 = 0
)

// Config represents a configuration of an experiment.
type Config struct {
	Type
	Trials    uint
	Seed      uint64
	EnvConf   envconfig.Config
	AgentConf agent.TypedConfig
}

// DefaultConfig returns the default experiment: 100 online trials of
// tabular Q-learning in the default smartcab world
func DefaultConfig() Config {
	return Config{
		Type:      OnlineExp,
		Trials:    DefaultTrials,
		Seed:      DefaultSeed,
		EnvConf:   envconfig.Default(),
		AgentConf: agent.NewTypedConfig(qlearning.DefaultConfig()),
	}
}

// LoadConfig loads a JSON experiment Config from path. Fields missing
// from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: %v", err)
	}

	c := DefaultConfig()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not decode %v: %v",
			path, err)
	}
	return c, c.Validate()
}

// Validate returns an error if the Config is invalid
func (c Config) Validate() error {
	if c.Type != OnlineExp {
		return fmt.Errorf("validate: no such experiment type %v", c.Type)
	}
	if c.Trials == 0 {
		return fmt.Errorf("validate: experiment must have at least one trial")
	}
	if err := c.EnvConf.Validate(); err != nil {
		return fmt.Errorf("environment %w", err)
	}
	if !agent.Registered(c.AgentConf.Type) {
		return fmt.Errorf("validate: no agent registered for type %q",
			c.AgentConf.Type)
	}
	if c.AgentConf.Config == nil {
		return fmt.Errorf("validate: no agent configured")
	}
	if c.AgentConf.Config.Type() != c.AgentConf.Type {
		return fmt.Errorf("validate: agent config of type %v stored as %v",
			c.AgentConf.Config.Type(), c.AgentConf.Type)
	}
	if err := c.AgentConf.Validate(); err != nil {
		return fmt.Errorf("agent %w", err)
	}
	return nil
}

// CreateExp creates the experiment described by the Config. The
// environment and agent are seeded with the Config's Seed.
func (c Config) CreateExp(t ...tracker.Tracker) (Experiment, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createExp: %v", err)
	}

	env, _, err := c.EnvConf.Create(c.Seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create "+
			"environment: %v", err)
	}
	a, err := c.AgentConf.CreateAgent(c.Seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create agent: %v", err)
	}

	switch c.Type {
	case OnlineExp:
		return NewOnline(env, a, c.Trials, t...), nil
	}

	panic(fmt.Sprintf("createExp: no such experiment type %v", c.Type))
}
