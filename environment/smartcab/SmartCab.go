package smartcab

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/environment"
	"github.com/samuelfneumann/smartcab/timestep"
)

// SmartCab implements the environment.Environment interface. Each
// episode is a single trial of the primary agent in a World.
type SmartCab struct {
	world   *World
	planner *Planner
	primary environment.AgentID
	enders  []environment.Ender

	currentStep timestep.TimeStep
}

// New creates a new SmartCab environment and returns it together with
// the first timestep of the first episode
func New(c Config, seed uint64) (*SmartCab, timestep.TimeStep, error) {
	w, err := NewWorld(c, seed)
	if err != nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: %v", err)
	}
	id, p := w.AddPrimary()

	arrived := environment.NewFunctionEnder(
		func(*timestep.TimeStep) bool { return w.Arrived() },
		timestep.Arrived,
	)
	deadline := environment.NewDeadlineLimit(c.EnforceDeadline,
		c.HardTimeLimit)

	s := &SmartCab{
		world:   w,
		planner: p,
		primary: id,
		enders:  []environment.Ender{arrived, deadline},
	}

	step, err := s.Reset()
	return s, step, err
}

// World returns the World the primary agent drives in
func (s *SmartCab) World() *World {
	return s.world
}

// Primary returns the ID of the primary agent
func (s *SmartCab) Primary() environment.AgentID {
	return s.primary
}

// Reset implements the environment.Environment interface
func (s *SmartCab) Reset() (timestep.TimeStep, error) {
	s.world.Reset()

	step := timestep.New(timestep.First, 0, s.world.Sense(s.primary),
		s.planner.NextWaypoint(), s.world.Deadline(s.primary), 0)
	s.currentStep = step

	return step, nil
}

// Step implements the environment.Environment interface. The primary
// agent acts first, then the World ticks. The returned percepts and
// waypoint are sensed after the tick, so they are the ones the agent
// next decides on. Arrival takes precedence over a timeout on the same
// step.
func (s *SmartCab) Step(a action.Action) (timestep.TimeStep, bool, error) {
	if s.currentStep.Last() {
		return timestep.TimeStep{}, true, fmt.Errorf("step: episode " +
			"has ended, call Reset to begin a new one")
	}
	if !a.Valid() {
		return timestep.TimeStep{}, false, fmt.Errorf("step: invalid "+
			"action %d", a)
	}

	reward := s.world.Act(s.primary, a)
	s.world.Tick()

	step := timestep.New(timestep.Mid, reward, s.world.Sense(s.primary),
		s.planner.NextWaypoint(), s.world.Deadline(s.primary),
		s.currentStep.Number+1)

	for _, e := range s.enders {
		if e.End(&step) {
			break
		}
	}
	s.currentStep = step

	return step, step.Last(), nil
}

// CurrentTimeStep implements the environment.Environment interface
func (s *SmartCab) CurrentTimeStep() timestep.TimeStep {
	return s.currentStep
}

// RewardSpan returns the minimum and maximum single step reward
func (s *SmartCab) RewardSpan() (min, max float64) {
	return s.world.Task().Min(), s.world.Task().Max()
}

func (s *SmartCab) String() string {
	loc := s.world.Location(s.primary)
	dest := s.world.Destination(s.primary)
	return fmt.Sprintf("SmartCab | Location: (%d, %d)  |  Destination: "+
		"(%d, %d)  |  %v", loc.X, loc.Y, dest.X, dest.Y, s.currentStep)
}
