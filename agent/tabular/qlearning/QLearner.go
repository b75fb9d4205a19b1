package qlearning

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/agent/tabular/policy"
	"github.com/samuelfneumann/smartcab/agent/tabular/table"
	"github.com/samuelfneumann/smartcab/state"
	"github.com/samuelfneumann/smartcab/timestep"
	"github.com/samuelfneumann/smartcab/utils/diagnostic"
	"github.com/samuelfneumann/smartcab/utils/floatutils"
)

// QLearner implements the update functionality for the tabular
// Q-Learning algorithm.
//
// The update target uses the action that the target Selector chooses
// in the next state rather than the maximum action value in the next
// state:
//
//	Q(s, a) ← (1 - α) Q(s, a) + α (r + γ Q(s', a')),  a' ~ target(s')
//
// After each update, the policy table entry for s is set to an action
// with maximal value in s, but only once every action has been taken
// at least once in s.
type QLearner struct {
	values       *table.Value
	policy       *table.Policy
	target       policy.Selector
	source       rand.Source // tie-breaking between maximal actions
	learningRate float64
	discount     float64
	printer      *diagnostic.Printer

	step     timestep.TimeStep
	action   action.Action
	nextStep timestep.TimeStep
	observed bool
}

// NewQLearner creates a new QLearner struct which updates the argument
// tables. The target Selector chooses the action in the next state
// which is used to construct the update target.
func NewQLearner(values *table.Value, p *table.Policy,
	target policy.Selector, learningRate, discount float64,
	seed uint64) *QLearner {
	return &QLearner{
		values:       values,
		policy:       p,
		target:       target,
		source:       rand.NewSource(seed),
		learningRate: learningRate,
		discount:     discount,
	}
}

// SetPrinter sets the Printer used for per-tick diagnostics and
// warnings. A nil Printer disables diagnostics.
func (q *QLearner) SetPrinter(p *diagnostic.Printer) {
	q.printer = p
}

// ObserveFirst observes and records the first episodic timestep
func (q *QLearner) ObserveFirst(t timestep.TimeStep) error {
	if !t.First() {
		q.printer.Warnf("ObserveFirst() should only be called on the "+
			"first timestep (current timestep = %d)", t.Number)
	}
	q.step = timestep.TimeStep{}
	q.nextStep = t
	q.observed = false
	return nil
}

// Observe observes and records any timestep other than the first
// timestep
func (q *QLearner) Observe(a action.Action, next timestep.TimeStep) error {
	if !a.Valid() {
		return fmt.Errorf("observe: invalid action %v", a)
	}
	q.step = q.nextStep
	q.action = a
	q.nextStep = next
	q.observed = true

	q.printer.Record(q.step.Deadline, q.step.Inputs, a, next.Reward)
	return nil
}

// Step updates the tables using the most recently observed transition
func (q *QLearner) Step() error {
	if !q.observed {
		return fmt.Errorf("step: no transition observed since the last " +
			"call to ObserveFirst")
	}
	q.Learn(timestep.NewTransition(q.step, q.action, q.nextStep))
	return nil
}

// Learn performs a single update using the argument transition.
// The transition's action must be the action that was actually taken.
func (q *QLearner) Learn(t timestep.Transition) {
	nextAction := q.target.Select(t.NextState)

	target := t.Reward + q.discount*q.values.At(t.NextState, nextAction)
	current := q.values.At(t.State, t.Action)
	updated := (1-q.learningRate)*current + q.learningRate*target
	q.values.Set(t.State, t.Action, updated)

	if err := q.updatePolicy(t.State); err != nil {
		q.printer.Warnf("could not update the policy by choosing the "+
			"max Q: %v", err)
	}
}

// updatePolicy sets the policy of state s to an action with maximal
// value, breaking ties uniformly at random. The policy is left
// unchanged if some action has never been taken in s or if the
// maximization fails.
func (q *QLearner) updatePolicy(s state.State) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("updatePolicy: %v", r)
		}
	}()

	row, complete := q.values.Row(s)
	if !complete {
		return nil
	}

	_, indices, err := floatutils.MaxSlice(row)
	if err != nil {
		return fmt.Errorf("updatePolicy: %w", err)
	}

	i := indices[policy.Uniform(len(indices), q.source)]
	q.policy.Set(s, action.All[i])
	return nil
}

// EndEpisode performs cleanup at the end of an episode
func (q *QLearner) EndEpisode() {
	q.observed = false
}
