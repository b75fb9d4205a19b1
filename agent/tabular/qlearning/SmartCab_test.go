package qlearning

import (
	"math"
	"testing"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/environment/smartcab"
	"github.com/samuelfneumann/smartcab/timestep"
)

// runTrials runs the agent online in a default smartcab world
func runTrials(tb testing.TB, q *QLearning, trials int) int {
	tb.Helper()
	env, _, err := smartcab.New(smartcab.DefaultConfig(), seed)
	if err != nil {
		tb.Fatal(err)
	}

	arrived := 0
	for i := 0; i < trials; i++ {
		step, err := env.Reset()
		if err != nil {
			tb.Fatal(err)
		}
		if err := q.ObserveFirst(step); err != nil {
			tb.Fatal(err)
		}

		for !step.Last() {
			a := q.SelectAction(step)
			if step, _, err = env.Step(a); err != nil {
				tb.Fatal(err)
			}
			if err := q.Observe(a, step); err != nil {
				tb.Fatal(err)
			}
			if err := q.Step(); err != nil {
				tb.Fatal(err)
			}
		}
		q.EndEpisode()

		if step.EndType() == timestep.Arrived {
			arrived++
		}
	}
	return arrived
}

func TestSmartCabTrials(t *testing.T) {
	q, err := New(DefaultConfig(), seed)
	if err != nil {
		t.Fatal(err)
	}
	runTrials(t, q, 50)

	if q.Values().Len() == 0 {
		t.Fatal("run: no values learned")
	}

	// Values are bounded by the largest reward over 1 - γ
	bound := 12.0 / (1 - DefaultDiscount)
	for _, s := range q.Values().States() {
		row, complete := q.Values().Row(s)
		for _, a := range action.All {
			v := q.Values().At(s, a)
			if math.IsNaN(v) || math.Abs(v) > bound {
				t.Errorf("run: Q[(%v, %v)] = %v out of bounds", s, a, v)
			}
		}

		p, ok := q.Policy().Get(s)
		if ok != complete {
			t.Errorf("run: policy entry %v for state %v with complete "+
				"row %v", ok, s, complete)
		}
		if ok && row[p.Index()] != maxOf(row) {
			t.Errorf("run: policy %v is not greedy in %v", p, row)
		}
	}
}

func maxOf(row []float64) float64 {
	m := math.Inf(-1)
	for _, v := range row {
		m = math.Max(m, v)
	}
	return m
}

func BenchmarkSmartCabTrial(b *testing.B) {
	q, err := New(DefaultConfig(), seed)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	runTrials(b, q, b.N)
}
