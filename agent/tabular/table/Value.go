// Package table implements the lookup tables used by tabular agents:
// action-value (Q) tables and deterministic policy tables.
package table

import (
	"sort"

	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/state"
)

// Key indexes a single entry of a Value table
type Key struct {
	State  state.State
	Action action.Action
}

// Value is an action-value table. Entries are created the first time
// they are written and are never removed. Reading an entry which has
// never been written returns 0 without creating the entry.
type Value struct {
	entries map[Key]float64
}

// NewValue returns a new, empty Value table
func NewValue() *Value {
	return &Value{entries: make(map[Key]float64)}
}

// At returns the value of taking action a in state s, or 0 if the
// value has never been assigned
func (v *Value) At(s state.State, a action.Action) float64 {
	return v.entries[Key{s, a}]
}

// Lookup returns the value of taking action a in state s and whether
// that value has been assigned
func (v *Value) Lookup(s state.State, a action.Action) (float64, bool) {
	q, ok := v.entries[Key{s, a}]
	return q, ok
}

// Set assigns the value of taking action a in state s
func (v *Value) Set(s state.State, a action.Action, q float64) {
	v.entries[Key{s, a}] = q
}

// Row returns the values of every action in action.All for state s.
// The returned bool is true only if every one of these values has been
// assigned; unassigned entries are reported as 0.
func (v *Value) Row(s state.State) ([]float64, bool) {
	row := make([]float64, action.Len())
	complete := true
	for i, a := range action.All {
		q, ok := v.entries[Key{s, a}]
		if !ok {
			complete = false
		}
		row[i] = q
	}
	return row, complete
}

// Len returns the number of assigned entries
func (v *Value) Len() int {
	return len(v.entries)
}

// States returns every state with at least one assigned entry, in a
// deterministic order
func (v *Value) States() []state.State {
	seen := make(map[state.State]struct{})
	for _, key := range maps.Keys(v.entries) {
		seen[key.State] = struct{}{}
	}

	states := maps.Keys(seen)
	sort.Slice(states, func(i, j int) bool {
		return state.Less(states[i], states[j])
	})
	return states
}

// Matrix returns the table as a dense matrix with one row per state
// returned by States and one column per action in action.All.
// Unassigned entries are 0. Matrix returns a nil matrix if the table
// is empty.
func (v *Value) Matrix() (*mat.Dense, []state.State) {
	states := v.States()
	if len(states) == 0 {
		return nil, states
	}

	m := mat.NewDense(len(states), action.Len(), nil)
	for i, s := range states {
		row, _ := v.Row(s)
		m.SetRow(i, row)
	}
	return m, states
}
