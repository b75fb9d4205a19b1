package policy

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/agent/tabular/table"
	"github.com/samuelfneumann/smartcab/state"
)

const seed uint64 = 192382

var s = state.State{Light: state.Red, Oncoming: action.Forward,
	Waypoint: action.Left}

// counts selects n actions in state st and counts each selected action
func counts(t *testing.T, sel Selector, st state.State, n int) []int {
	t.Helper()
	c := make([]int, action.Len())
	for i := 0; i < n; i++ {
		a := sel.Select(st)
		if !a.Valid() {
			t.Fatalf("select: action %v outside of the action set", a)
		}
		c[a.Index()]++
	}
	return c
}

func TestGreedyUnseenStateUniform(t *testing.T) {
	g := NewGreedy(table.NewPolicy(), seed)

	n := 40_000
	c := counts(t, g, s, n)

	expected := float64(n) / float64(action.Len())
	for i, count := range c {
		if math.Abs(float64(count)-expected) > 0.05*expected {
			t.Errorf("select: action %v selected %d times, expected "+
				"about %.0f", action.All[i], count, expected)
		}
	}
}

func TestGreedyFollowsPolicy(t *testing.T) {
	p := table.NewPolicy()
	p.Set(s, action.Right)
	g := NewGreedy(p, seed)

	for i := 0; i < 1000; i++ {
		if a := g.Select(s); a != action.Right {
			t.Fatalf("select: want %v, have %v", action.Right, a)
		}
	}
}

func TestEGreedy(t *testing.T) {
	p := table.NewPolicy()
	p.Set(s, action.Forward)

	// ε = 0 behaves exactly like Greedy
	e, err := NewEGreedy(p, 0, 1, 0, seed)
	if err != nil {
		t.Fatal(err)
	}
	if c := counts(t, e, s, 1000); c[action.Forward.Index()] != 1000 {
		t.Errorf("select: ε=0 should always follow the policy, have %v", c)
	}

	// ε = 0.5 still explores every action
	e.SetEpsilon(0.5)
	c := counts(t, e, s, 10_000)
	for i, count := range c {
		if count == 0 {
			t.Errorf("select: action %v never selected with ε=0.5",
				action.All[i])
		}
	}
	if c[action.Forward.Index()] < 5000 {
		t.Errorf("select: greedy action selected %d/10000 times, "+
			"expected at least 5000", c[action.Forward.Index()])
	}
}

func TestEGreedyDecay(t *testing.T) {
	e, err := NewEGreedy(table.NewPolicy(), 0.5, 0.5, 0.1, seed)
	if err != nil {
		t.Fatal(err)
	}

	e.Decay()
	if e.Epsilon() != 0.25 {
		t.Errorf("decay: want ε=0.25, have %v", e.Epsilon())
	}
	e.Decay()
	e.Decay()
	if e.Epsilon() != 0.1 {
		t.Errorf("decay: ε should not drop below 0.1, have %v", e.Epsilon())
	}
}

func TestEGreedyValidation(t *testing.T) {
	if _, err := NewEGreedy(table.NewPolicy(), 1.5, 1, 0, seed); err == nil {
		t.Error("newEGreedy: expected error for ε > 1")
	}
	if _, err := NewEGreedy(table.NewPolicy(), 0.1, 0, 0, seed); err == nil {
		t.Error("newEGreedy: expected error for decay = 0")
	}
}

func TestSoftmax(t *testing.T) {
	values := table.NewValue()
	values.Set(s, action.Left, 5.0)

	sm, err := NewSoftmax(values, 1.0, seed)
	if err != nil {
		t.Fatal(err)
	}

	probs := sm.Probabilities(s)
	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("probabilities: want sum 1, have %v", sum)
	}
	if probs[action.Left.Index()] < 0.9 {
		t.Errorf("probabilities: left should dominate, have %v", probs)
	}

	c := counts(t, sm, s, 2000)
	if c[action.Left.Index()] < 1700 {
		t.Errorf("select: left selected %d/2000 times", c[action.Left.Index()])
	}

	if _, err := NewSoftmax(values, 0, seed); err == nil {
		t.Error("newSoftmax: expected error for zero temperature")
	}
}

func TestUniform(t *testing.T) {
	src := rand.NewSource(seed)
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		v := Uniform(3, src)
		if v < 0 || v >= 3 {
			t.Fatalf("uniform: %d outside [0, 3)", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("uniform: want all 3 values sampled, have %v", seen)
	}
}
