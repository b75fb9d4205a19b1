package smartcab

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/environment"
)

// moves are the waypoints a dummy may choose from
var moves = []action.Action{action.Forward, action.Left, action.Right}

// dummy is background traffic. A dummy picks a random waypoint and
// takes it as soon as the traffic rules allow, then picks another.
type dummy struct {
	world    *World
	id       environment.AgentID
	waypoint action.Action
	rng      *rand.Rand
}

func newDummy(w *World, rng *rand.Rand) *dummy {
	d := &dummy{world: w, rng: rng}
	d.reset()
	return d
}

// NextWaypoint implements the environment.RoutePlanner interface
func (d *dummy) NextWaypoint() action.Action {
	return d.waypoint
}

func (d *dummy) reset() {
	d.waypoint = moves[d.rng.Intn(len(moves))]
}

func (d *dummy) update() {
	a := action.Idle
	if Legal(d.world.Sense(d.id), d.waypoint) {
		a = d.waypoint
		d.reset()
	}
	d.world.Act(d.id, a)
}
