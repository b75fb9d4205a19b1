// Package action implements the discrete actions available to a smartcab
package action

import "fmt"

// Action is a single discrete driving action. The same values are used
// to describe the intent of other vehicles at an intersection and the
// direction suggested by a route planner, in which case Idle means that
// there is no vehicle or no waypoint.
type Action uint8

const (
	Idle Action = iota
	Forward
	Right
	Left
)

// All holds every Action in a fixed order. Tables and selectors index
// actions by their position in All.
var All = []Action{Idle, Forward, Right, Left}

// Len returns the number of actions
func Len() int {
	return len(All)
}

// Valid returns whether the Action is one of the actions in All
func (a Action) Valid() bool {
	return a <= Left
}

// Index returns the position of the Action in All
func (a Action) Index() int {
	if !a.Valid() {
		panic(fmt.Sprintf("index: invalid action %d", uint8(a)))
	}
	return int(a)
}

func (a Action) String() string {
	switch a {
	case Idle:
		return "None"
	case Forward:
		return "forward"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// Parse returns the Action with the given name. Both "None" and "idle"
// name the Idle action.
func Parse(name string) (Action, error) {
	switch name {
	case "None", "none", "idle", "":
		return Idle, nil
	case "forward":
		return Forward, nil
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	}
	return Idle, fmt.Errorf("parse: no such action %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (a Action) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("marshalText: invalid action %d", uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
