// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/state"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes why an episode ended
type EndType int

const (
	Unended EndType = iota
	Arrived         // destination reached
	Timeout         // deadline or hard time limit exceeded
)

func (e EndType) String() string {
	switch e {
	case Arrived:
		return "Arrived"
	case Timeout:
		return "Timeout"
	default:
		return "Unended"
	}
}

// TimeStep packages together a single timestep in an environment. The
// Inputs and Waypoint fields hold the raw percepts of the smartcab;
// they are encoded into a state.State by the agent.
type TimeStep struct {
	StepType
	Reward   float64
	Inputs   state.Inputs
	Waypoint action.Action
	Deadline int
	Number   int
	endType  EndType
}

// New returns a new TimeStep
func New(t StepType, r float64, in state.Inputs, waypoint action.Action,
	deadline, n int) TimeStep {
	return TimeStep{
		StepType: t,
		Reward:   r,
		Inputs:   in,
		Waypoint: waypoint,
		Deadline: deadline,
		Number:   n,
	}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd sets the reason the episode ended
func (t *TimeStep) SetEnd(e EndType) {
	t.endType = e
}

// EndType returns the reason the episode ended, or Unended if the
// TimeStep is not the last in its episode
func (t *TimeStep) EndType() EndType {
	return t.endType
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Deadline: %d  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Deadline, t.Number)
}

// Transition is a single (state, action, reward, next state) tuple
type Transition struct {
	State     state.State
	Action    action.Action
	Reward    float64
	NextState state.State
}

// NewTransition constructs a Transition from two consecutive TimeSteps
// and the action taken in between them
func NewTransition(step TimeStep, a action.Action,
	next TimeStep) Transition {
	return Transition{
		State:     state.Encode(step.Inputs, step.Waypoint),
		Action:    a,
		Reward:    next.Reward,
		NextState: state.Encode(next.Inputs, next.Waypoint),
	}
}
