package policy

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/agent/tabular/table"
	"github.com/samuelfneumann/smartcab/state"
)

// Softmax selects actions from a Boltzmann distribution over the
// action values of a state. Unassigned action values are treated as 0.
type Softmax struct {
	values      *table.Value
	temperature float64
	source      rand.Source
}

// NewSoftmax returns a new Softmax policy over the action-value table
// values with the given temperature
func NewSoftmax(values *table.Value, temperature float64,
	seed uint64) (*Softmax, error) {
	if temperature <= 0 {
		return nil, fmt.Errorf("newSoftmax: temperature must be positive, "+
			"have %v", temperature)
	}

	return &Softmax{
		values:      values,
		temperature: temperature,
		source:      rand.NewSource(seed),
	}, nil
}

// Select selects an action in state s
func (s *Softmax) Select(st state.State) action.Action {
	probs := s.Probabilities(st)
	dist := distuv.NewCategorical(probs, s.source)
	return action.All[int(dist.Rand())]
}

// Probabilities returns the probability of selecting each action in
// action.All in state st
func (s *Softmax) Probabilities(st state.State) []float64 {
	row, _ := s.values.Row(st)

	// Subtract the max for numerical stability
	max := floats.Max(row)
	for i := range row {
		row[i] = math.Exp((row[i] - max) / s.temperature)
	}
	floats.Scale(1/floats.Sum(row), row)

	return row
}
