// Package state implements the encoding of smartcab percepts into
// states which can be used as keys of tabular value functions
package state

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/action"
)

// Light is the colour of the traffic light facing the smartcab
type Light uint8

const (
	Red Light = iota
	Green
)

// Valid returns whether the light is either Red or Green
func (l Light) Valid() bool {
	return l == Red || l == Green
}

func (l Light) String() string {
	switch l {
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return fmt.Sprintf("Light(%d)", uint8(l))
	}
}

// Inputs are the percepts sensed at an intersection: the light and the
// intended action of any oncoming vehicle and of vehicles approaching
// from the left and from the right. A direction of action.Idle means no
// vehicle is present.
type Inputs struct {
	Light    Light
	Oncoming action.Action
	Left     action.Action
	Right    action.Action
}

func (i Inputs) String() string {
	return fmt.Sprintf("{light: %v, oncoming: %v, left: %v, right: %v}",
		i.Light, i.Oncoming, i.Left, i.Right)
}

// State is the canonical key used by tabular learners. It is a
// comparable value, so two States are equal exactly when all of their
// fields are equal and a State can be used directly as a map key.
type State struct {
	Light    Light
	Oncoming action.Action
	Left     action.Action
	Right    action.Action
	Waypoint action.Action
}

// Encode converts percepts and the next waypoint suggested by a route
// planner into a State.
//
// Encode panics if the percepts hold values outside of their domains.
// Such inputs can only be produced by a faulty environment.
func Encode(in Inputs, waypoint action.Action) State {
	if !in.Light.Valid() {
		panic(fmt.Sprintf("encode: invalid light %v", in.Light))
	}
	for _, a := range []action.Action{in.Oncoming, in.Left, in.Right,
		waypoint} {
		if !a.Valid() {
			panic(fmt.Sprintf("encode: invalid direction %v", a))
		}
	}

	return State{
		Light:    in.Light,
		Oncoming: in.Oncoming,
		Left:     in.Left,
		Right:    in.Right,
		Waypoint: waypoint,
	}
}

// Inputs returns the percepts the State was encoded from
func (s State) Inputs() Inputs {
	return Inputs{
		Light:    s.Light,
		Oncoming: s.Oncoming,
		Left:     s.Left,
		Right:    s.Right,
	}
}

func (s State) String() string {
	return fmt.Sprintf("(light=%v oncoming=%v left=%v right=%v "+
		"next_waypoint=%v)", s.Light, s.Oncoming, s.Left, s.Right, s.Waypoint)
}

// Less orders States lexicographically by field. It is used to list
// table entries deterministically.
func Less(a, b State) bool {
	if a.Light != b.Light {
		return a.Light < b.Light
	}
	if a.Waypoint != b.Waypoint {
		return a.Waypoint < b.Waypoint
	}
	if a.Oncoming != b.Oncoming {
		return a.Oncoming < b.Oncoming
	}
	if a.Left != b.Left {
		return a.Left < b.Left
	}
	return a.Right < b.Right
}
