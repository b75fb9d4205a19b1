// Package environment outlines the interfaces and structs needed to implement
// concrete environments
package environment

import (
	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/state"
	"github.com/samuelfneumann/smartcab/timestep"
)

// AgentID identifies an agent in a World
type AgentID int

// World is a simulated world of intersections that agents drive in.
// A learning agent only ever queries the World through these methods.
type World interface {
	// Sense returns the current percepts of the agent. Sense has no
	// side effects.
	Sense(id AgentID) state.Inputs

	// Act applies the action of the agent and returns the reward. The
	// reward scheme is determined by the World.
	Act(id AgentID, a action.Action) float64

	// Deadline returns the number of steps remaining before the
	// agent's trial fails
	Deadline(id AgentID) int
}

// RoutePlanner suggests the next direction to drive in to reach a
// destination. A waypoint of action.Idle means the destination has
// been reached.
type RoutePlanner interface {
	NextWaypoint() action.Action
}

// Ender determines when episodes should be ended
type Ender interface {
	// End determines whether or not the current episode should be
	// ended. If so, End modifies the timestep so that its StepType
	// is timestep.Last and its EndType is set.
	End(*timestep.TimeStep) bool
}

// Starter samples starting positions for episodes
type Starter interface {
	Start() []int
}

// Environment implements an episodic environment for a single primary
// agent, driving a World one tick per call to Step
type Environment interface {
	// Reset starts a new episode and returns its first timestep
	Reset() (timestep.TimeStep, error)

	// Step applies an action of the primary agent, advances the World
	// by a tick and returns the next timestep and whether the episode
	// has ended
	Step(a action.Action) (timestep.TimeStep, bool, error)

	// CurrentTimeStep returns the most recent timestep
	CurrentTimeStep() timestep.TimeStep
}
