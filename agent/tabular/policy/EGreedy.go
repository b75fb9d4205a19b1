package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/agent/tabular/table"
	"github.com/samuelfneumann/smartcab/state"
	"github.com/samuelfneumann/smartcab/utils/floatutils"
)

// EGreedy implements an ε-greedy policy over a policy table. With
// probability ε an action is selected uniformly at random, otherwise
// the action is selected as by Greedy.
type EGreedy struct {
	*Greedy
	epsilon    float64
	decay      float64
	minEpsilon float64
	explore    distuv.Bernoulli
}

// NewEGreedy returns a new ε-greedy policy following policy table p.
// After each call to Decay, ε is multiplied by decay but never drops
// below minEpsilon. A decay of 1 keeps ε constant.
func NewEGreedy(p *table.Policy, e, decay, minEpsilon float64,
	seed uint64) (*EGreedy, error) {
	if e < 0 || e > 1 {
		return nil, fmt.Errorf("newEGreedy: epsilon must be in [0, 1], "+
			"have %v", e)
	}
	if decay <= 0 || decay > 1 {
		return nil, fmt.Errorf("newEGreedy: decay must be in (0, 1], "+
			"have %v", decay)
	}

	source := rand.NewSource(seed)
	return &EGreedy{
		Greedy:     &Greedy{policy: p, uniform: newUniformActions(source)},
		epsilon:    e,
		decay:      decay,
		minEpsilon: minEpsilon,
		explore:    distuv.Bernoulli{P: e, Src: source},
	}, nil
}

// Select selects an action in state s
func (e *EGreedy) Select(s state.State) action.Action {
	if e.explore.Rand() == 1.0 {
		return e.random()
	}
	return e.Greedy.Select(s)
}

// SetEpsilon sets the probability of selecting a random action
func (e *EGreedy) SetEpsilon(epsilon float64) {
	e.epsilon = floatutils.Clip(epsilon, 0, 1)
	e.explore.P = e.epsilon
}

// Epsilon returns the probability of selecting a random action
func (e *EGreedy) Epsilon() float64 {
	return e.epsilon
}

// Decay decays ε
func (e *EGreedy) Decay() {
	if e.epsilon*e.decay < e.minEpsilon {
		e.SetEpsilon(e.minEpsilon)
		return
	}
	e.SetEpsilon(e.epsilon * e.decay)
}
