package table

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/state"
)

// Policy is a deterministic policy table mapping states to the action
// currently believed to be best in that state
type Policy struct {
	entries map[state.State]action.Action
}

// NewPolicy returns a new, empty Policy table
func NewPolicy() *Policy {
	return &Policy{entries: make(map[state.State]action.Action)}
}

// Get returns the action for state s and whether one has been set
func (p *Policy) Get(s state.State) (action.Action, bool) {
	a, ok := p.entries[s]
	return a, ok
}

// Set sets the action for state s
func (p *Policy) Set(s state.State, a action.Action) {
	p.entries[s] = a
}

// Len returns the number of states with a policy entry
func (p *Policy) Len() int {
	return len(p.entries)
}

// States returns every state with a policy entry, in a deterministic
// order
func (p *Policy) States() []state.State {
	states := maps.Keys(p.entries)
	sort.Slice(states, func(i, j int) bool {
		return state.Less(states[i], states[j])
	})
	return states
}
