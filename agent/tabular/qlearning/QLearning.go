// Package qlearning implements the tabular Q-Learning algorithm used by
// the smartcab.
//
// The agent keeps an action-value table and a policy table. Actions
// are selected by a policy.Selector over these tables, and each
// observed transition updates the action-value table and then the
// policy table of the state the transition started in.
package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/agent"
	"github.com/samuelfneumann/smartcab/agent/tabular/policy"
	"github.com/samuelfneumann/smartcab/agent/tabular/table"
	"github.com/samuelfneumann/smartcab/state"
	"github.com/samuelfneumann/smartcab/timestep"
)

// QLearning implements the Q-Learning algorithm
type QLearning struct {
	*QLearner
	behaviour policy.Selector
	values    *table.Value
	policy    *table.Policy
	seed      uint64
}

// New creates a new QLearning agent from a Config
func New(c Config, seed uint64) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	values := table.NewValue()
	p := table.NewPolicy()

	var behaviour policy.Selector
	switch c.explorer() {
	case agent.Greedy:
		behaviour = policy.NewGreedy(p, seed)

	case agent.EGreedy:
		e, err := policy.NewEGreedy(p, c.Epsilon, c.decay(), c.MinEpsilon,
			seed)
		if err != nil {
			return nil, fmt.Errorf("new: %w", err)
		}
		behaviour = e

	case agent.Softmax:
		s, err := policy.NewSoftmax(values, c.Temperature, seed)
		if err != nil {
			return nil, fmt.Errorf("new: %w", err)
		}
		behaviour = s

	default:
		return nil, fmt.Errorf("new: no such explorer %v", c.Explorer)
	}

	// The update target uses the same Selector that chooses actions
	learner := NewQLearner(values, p, behaviour, c.LearningRate,
		c.Discount, seed+1)

	return &QLearning{
		QLearner:  learner,
		behaviour: behaviour,
		values:    values,
		policy:    p,
		seed:      seed,
	}, nil
}

// SelectAction encodes the percepts of the timestep into a state and
// selects an action in that state
func (q *QLearning) SelectAction(t timestep.TimeStep) action.Action {
	return q.behaviour.Select(state.Encode(t.Inputs, t.Waypoint))
}

// EndEpisode performs cleanup at the end of an episode and decays
// exploration if the behaviour policy supports it
func (q *QLearning) EndEpisode() {
	q.QLearner.EndEpisode()
	if d, ok := q.behaviour.(policy.Decayer); ok {
		d.Decay()
	}
}

// Values returns the agent's action-value table
func (q *QLearning) Values() *table.Value {
	return q.values
}

// Policy returns the agent's policy table
func (q *QLearning) Policy() *table.Policy {
	return q.policy
}
