package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

var _ Starter = CategoricalStarter{}

// CategoricalStarter returns starting positions sampled from a
// multi-dimensional uniform categorical distribution. Dimension i is
// sampled from (0, 1, 2, ... bounds[i]-1).
type CategoricalStarter struct {
	features int
	rand     []distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter, sampling
// dimension i from (0, 1, 2, ... bounds[i]-1)
func NewCategoricalStarter(bounds []int,
	seed uint64) (CategoricalStarter, error) {
	source := rand.NewSource(seed)

	rand := make([]distuv.Categorical, len(bounds))
	for i := range rand {
		if bounds[i] <= 0 {
			return CategoricalStarter{}, fmt.Errorf("newCategoricalStarter: "+
				"bound %d must be positive, have %d", i, bounds[i])
		}

		// Create the weights for the uniform categorical distribution
		weights := make([]float64, bounds[i])
		for j := range weights {
			weights[j] = 1.0 / float64(len(weights))
		}

		rand[i] = distuv.NewCategorical(weights, source)
	}

	return CategoricalStarter{len(bounds), rand}, nil
}

// Start returns a starting position
func (c CategoricalStarter) Start() []int {
	start := make([]int, c.features)
	for i := range start {
		start[i] = int(c.rand[i].Rand())
	}

	return start
}
