package policy

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/agent/tabular/table"
	"github.com/samuelfneumann/smartcab/state"
)

// Greedy follows a policy table. In states which have no entry in the
// table, Greedy selects an action uniformly at random. This is the only
// source of exploration: once a state has a policy entry, Greedy always
// selects that entry.
type Greedy struct {
	policy  *table.Policy
	uniform distuv.Categorical
}

// NewGreedy returns a new Greedy policy following the policy table p
func NewGreedy(p *table.Policy, seed uint64) *Greedy {
	source := rand.NewSource(seed)
	return &Greedy{policy: p, uniform: newUniformActions(source)}
}

// Select selects an action in state s
func (g *Greedy) Select(s state.State) action.Action {
	if a, ok := g.policy.Get(s); ok {
		return a
	}
	return g.random()
}

// random selects an action uniformly at random
func (g *Greedy) random() action.Action {
	return action.All[int(g.uniform.Rand())]
}
