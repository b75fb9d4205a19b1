package smartcab

import (
	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/environment"
)

// Planner implements the environment.RoutePlanner interface for the
// primary agent of a World. Routes first close the east-west gap to the
// destination and then the north-south gap, ignoring wrap-around.
type Planner struct {
	world *World
	id    environment.AgentID
}

// NextWaypoint returns the suggested next move from the agent's
// current location and heading. It returns action.Idle at the
// destination.
func (p *Planner) NextWaypoint() action.Action {
	c := p.world.cars[p.id]
	dx := c.destination.X - c.location.X
	dy := c.destination.Y - c.location.Y
	h := c.heading

	switch {
	case dx == 0 && dy == 0:
		return action.Idle

	case dx != 0:
		switch {
		case dx*h.DX > 0:
			return action.Forward
		case dx*h.DX < 0:
			return action.Right // long U-turn
		case dx*h.DY > 0:
			return action.Left
		default:
			return action.Right
		}

	default:
		switch {
		case dy*h.DY > 0:
			return action.Forward
		case dy*h.DY < 0:
			return action.Right
		case dy*h.DX > 0:
			return action.Right
		default:
			return action.Left
		}
	}
}
