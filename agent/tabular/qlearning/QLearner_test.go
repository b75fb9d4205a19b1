package qlearning

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/agent/tabular/policy"
	"github.com/samuelfneumann/smartcab/agent/tabular/table"
	"github.com/samuelfneumann/smartcab/state"
	"github.com/samuelfneumann/smartcab/timestep"
	"github.com/samuelfneumann/smartcab/utils/diagnostic"
)

const seed uint64 = 1923812

var (
	s1 = state.State{Light: state.Green, Waypoint: action.Forward}
	s2 = state.State{Light: state.Red, Oncoming: action.Left,
		Waypoint: action.Right}
)

// newLearner returns a QLearner using the reference tuning and a
// Greedy target policy
func newLearner() (*QLearner, *table.Value, *table.Policy) {
	values := table.NewValue()
	p := table.NewPolicy()
	target := policy.NewGreedy(p, seed)
	q := NewQLearner(values, p, target, DefaultLearningRate,
		DefaultDiscount, seed)
	return q, values, p
}

func TestLearnArithmetic(t *testing.T) {
	q, values, _ := newLearner()

	q.Learn(timestep.Transition{State: s1, Action: action.Left, Reward: 1,
		NextState: s2})

	// 0.6 * 0 + 0.4 * (1 + 0.3 * 0)
	if v := values.At(s1, action.Left); math.Abs(v-0.4) > 1e-12 {
		t.Errorf("learn: want Q = 0.4, have %v", v)
	}
}

func TestLearnUsesNextStateValue(t *testing.T) {
	q, values, p := newLearner()

	// Fix the target action in s2 so the lookahead is deterministic
	p.Set(s2, action.Right)
	values.Set(s2, action.Right, 2.0)
	values.Set(s1, action.Idle, 1.0)

	q.Learn(timestep.Transition{State: s1, Action: action.Idle, Reward: -1,
		NextState: s2})

	// 0.6 * 1 + 0.4 * (-1 + 0.3 * 2)
	want := 0.6*1.0 + 0.4*(-1.0+0.3*2.0)
	if v := values.At(s1, action.Idle); math.Abs(v-want) > 1e-12 {
		t.Errorf("learn: want Q = %v, have %v", want, v)
	}
}

func TestPolicyRequiresAllActions(t *testing.T) {
	q, _, p := newLearner()

	for i, a := range action.All {
		if _, ok := p.Get(s1); ok {
			t.Fatalf("learn: policy defined after only %d actions", i)
		}
		q.Learn(timestep.Transition{State: s1, Action: a,
			Reward: float64(i), NextState: s2})
	}

	a, ok := p.Get(s1)
	if !ok {
		t.Fatal("learn: policy undefined after every action was taken")
	}

	// Left received the largest reward
	if a != action.Left {
		t.Errorf("learn: want policy %v, have %v", action.Left, a)
	}

	// The lookahead state was never learned in
	if _, ok := p.Get(s2); ok {
		t.Error("learn: policy defined for a state never learned in")
	}
}

func TestRepeatedUpdateConverges(t *testing.T) {
	q, values, p := newLearner()

	// With the policy fixed, the target action in s1 is always forward,
	// so repeating the same transition is a contraction toward
	// r / (1 - γ)
	p.Set(s1, action.Forward)
	reward := 1.0
	tr := timestep.Transition{State: s1, Action: action.Forward,
		Reward: reward, NextState: s1}

	prev := values.At(s1, action.Forward)
	for i := 0; i < 200; i++ {
		q.Learn(tr)
		v := values.At(s1, action.Forward)
		if v < prev {
			t.Fatalf("learn: sequence not monotone at update %d: %v -> %v",
				i, prev, v)
		}
		prev = v
	}

	fixed := reward / (1 - DefaultDiscount)
	if math.Abs(prev-fixed) > 1e-9 {
		t.Errorf("learn: want convergence to %v, have %v", fixed, prev)
	}
}

func TestTieBreakFairness(t *testing.T) {
	q, values, p := newLearner()

	values.Set(s1, action.Idle, 0.5)
	values.Set(s1, action.Forward, 0.5)
	values.Set(s1, action.Right, 0.5)
	values.Set(s1, action.Left, -1.0)

	chosen := make(map[action.Action]int)
	for i := 0; i < 300; i++ {
		if err := q.updatePolicy(s1); err != nil {
			t.Fatal(err)
		}
		a, _ := p.Get(s1)
		chosen[a]++
	}

	for _, a := range []action.Action{action.Idle, action.Forward,
		action.Right} {
		if chosen[a] == 0 {
			t.Errorf("updatePolicy: tied action %v never chosen: %v", a,
				chosen)
		}
	}
	if chosen[action.Left] != 0 {
		t.Errorf("updatePolicy: non-maximal action chosen %d times",
			chosen[action.Left])
	}
}

func TestPolicyFailureIsNotFatal(t *testing.T) {
	q, values, p := newLearner()

	var buf bytes.Buffer
	q.SetPrinter(diagnostic.New(&buf, false, false))

	for _, a := range action.All {
		values.Set(s1, a, 0)
	}
	p.Set(s1, action.Idle)

	q.Learn(timestep.Transition{State: s1, Action: action.Left,
		Reward: math.NaN(), NextState: s2})

	if !math.IsNaN(values.At(s1, action.Left)) {
		t.Error("learn: value update should still be applied")
	}
	if a, _ := p.Get(s1); a != action.Idle {
		t.Errorf("learn: policy should be unchanged, have %v", a)
	}
	if !strings.Contains(buf.String(), "could not update the policy") {
		t.Errorf("learn: expected a warning, have %q", buf.String())
	}
}

// constant is a Selector which always selects the same action
type constant action.Action

func (c constant) Select(state.State) action.Action { return action.Action(c) }

func TestPolicyPanicIsRecovered(t *testing.T) {
	values := table.NewValue()

	// Setting an entry of a zero Policy panics on its nil map
	p := &table.Policy{}
	q := NewQLearner(values, p, constant(action.Idle), DefaultLearningRate,
		DefaultDiscount, seed)

	var buf bytes.Buffer
	q.SetPrinter(diagnostic.New(&buf, false, false))

	for _, a := range action.All {
		values.Set(s1, a, 0)
	}
	q.Learn(timestep.Transition{State: s1, Action: action.Forward,
		Reward: 1, NextState: s2})

	if v := values.At(s1, action.Forward); math.Abs(v-0.4) > 1e-12 {
		t.Errorf("learn: want Q = 0.4, have %v", v)
	}
	if _, ok := p.Get(s1); ok {
		t.Error("learn: policy should be unchanged")
	}
	if out := buf.String(); !strings.Contains(out,
		"could not update the policy") || !strings.Contains(out,
		"updatePolicy") {
		t.Errorf("learn: expected a recovered warning, have %q", out)
	}
}

func TestStepWithoutObservation(t *testing.T) {
	q, _, _ := newLearner()

	first := timestep.New(timestep.First, 0, state.Inputs{}, action.Forward,
		10, 0)
	if err := q.ObserveFirst(first); err != nil {
		t.Fatal(err)
	}
	if err := q.Step(); err == nil {
		t.Error("step: expected error before any transition is observed")
	}
	if err := q.Observe(action.Action(12), first); err == nil {
		t.Error("observe: expected error for invalid action")
	}
}
