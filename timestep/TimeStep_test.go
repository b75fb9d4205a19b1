package timestep

import (
	"testing"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/state"
)

func TestNewTransition(t *testing.T) {
	in := state.Inputs{Light: state.Green}
	step := New(First, 0, in, action.Forward, 20, 0)
	next := New(Mid, 2.0, state.Inputs{Light: state.Red, Left: action.Left},
		action.Right, 19, 1)

	tr := NewTransition(step, action.Forward, next)
	if tr.Reward != 2.0 {
		t.Errorf("reward: want 2.0, have %v", tr.Reward)
	}
	if tr.State != state.Encode(in, action.Forward) {
		t.Errorf("state: have %v", tr.State)
	}
	if tr.NextState.Waypoint != action.Right ||
		tr.NextState.Left != action.Left {
		t.Errorf("next state: have %v", tr.NextState)
	}
}

func TestEndType(t *testing.T) {
	step := New(Mid, 0, state.Inputs{}, action.Idle, 3, 4)
	if step.Last() || step.EndType() != Unended {
		t.Error("new: mid step should not be ended")
	}

	step.StepType = Last
	step.SetEnd(Arrived)
	if !step.Last() || step.EndType() != Arrived {
		t.Errorf("setEnd: want Last/Arrived, have %v/%v", step.StepType,
			step.EndType())
	}
}
