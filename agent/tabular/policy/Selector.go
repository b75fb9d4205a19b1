// Package policy implements action selection for tabular agents.
//
// Every policy in this package is a Selector. The default Selector is
// Greedy, which follows a policy table and falls back to a uniform
// random action in states without a policy entry. EGreedy and Softmax
// add explicit exploration on top of the learned tables.
package policy

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/state"
)

// Selector selects an action to take in a state
type Selector interface {
	Select(s state.State) action.Action
}

// Decayer is a Selector whose amount of exploration decays over time.
// Decay is called once at the end of each episode.
type Decayer interface {
	Selector
	Decay()
}

// Uniform samples an integer uniformly at random from [0, n) using the
// argument source
func Uniform(n int, src rand.Source) int {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1.0
	}
	dist := distuv.NewCategorical(weights, src)
	return int(dist.Rand())
}

// newUniformActions returns a categorical distribution that samples
// indices into action.All uniformly
func newUniformActions(src rand.Source) distuv.Categorical {
	weights := make([]float64, action.Len())
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}
	return distuv.NewCategorical(weights, src)
}
