// Package envconfig provides configuration structs for configuring
// environments with default physical parameters and tasks. Environment
// configurations in this package are JSON serializable.
package envconfig

import (
	"fmt"

	env "github.com/samuelfneumann/smartcab/environment"
	"github.com/samuelfneumann/smartcab/environment/smartcab"
	ts "github.com/samuelfneumann/smartcab/timestep"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	SmartCab EnvName = "Smartcab"
)

// TaskName stores the tasks that can be configured with this package.
// Note that not all tasks can be used with all environments. The tasks
// that can be used with each environment are as follows:
//
//	Environment			Task
//	Smartcab			Reach
type TaskName string

// Tasks available for configuration
const (
	Reach TaskName = "Reach"
)

// Config implements a specific configuration of a specific environment
// and specific task. Not all environments can have all tasks.
type Config struct {
	Environment EnvName
	Task        TaskName
	World       smartcab.Config
}

// NewConfig returns a new environment Config
func NewConfig(envName EnvName, taskName TaskName,
	world smartcab.Config) Config {
	return Config{
		Environment: envName,
		Task:        taskName,
		World:       world,
	}
}

// Default returns the default environment Config
func Default() Config {
	return NewConfig(SmartCab, Reach, smartcab.DefaultConfig())
}

// Validate returns an error if the Config cannot create an environment
func (c Config) Validate() error {
	if c.Environment != SmartCab {
		return fmt.Errorf("validate: no such environment %v", c.Environment)
	}
	if c.Task != Reach {
		return fmt.Errorf("validate: %v environment has no task %v",
			c.Environment, c.Task)
	}
	if err := c.World.Validate(); err != nil {
		return fmt.Errorf("world %w", err)
	}
	return nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment.
func (c Config) Create(seed uint64) (env.Environment, ts.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %v", err)
	}

	switch c.Environment {
	case SmartCab:
		return CreateSmartCab(c.World, seed)
	}

	panic(fmt.Sprintf("create: cannot create environment %v, no such "+
		"environment", c.Environment))
}

// CreateSmartCab is a factory for creating the SmartCab environment
// with the Reach task
func CreateSmartCab(world smartcab.Config, seed uint64) (env.Environment,
	ts.TimeStep, error) {
	s, step, err := smartcab.New(world, seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createSmartCab: %v", err)
	}
	return s, step, nil
}
