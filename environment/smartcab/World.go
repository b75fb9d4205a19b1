// Package smartcab implements a grid of intersections with traffic
// lights, dummy traffic and a single primary smartcab which must reach
// its destination before a deadline
package smartcab

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/environment"
	"github.com/samuelfneumann/smartcab/state"
	"github.com/samuelfneumann/smartcab/utils/intutils"
)

// Location is an intersection on the grid
type Location struct {
	X, Y int
}

// Heading is a unit direction of travel
type Heading struct {
	DX, DY int
}

// Headings lists the valid headings
var Headings = []Heading{{1, 0}, {0, -1}, {-1, 0}, {0, 1}}

// Left returns the heading after turning left
func (h Heading) Left() Heading {
	return Heading{h.DY, -h.DX}
}

// Right returns the heading after turning right
func (h Heading) Right() Heading {
	return Heading{-h.DY, h.DX}
}

// Vertical returns whether the heading is along the north-south axis
func (h Heading) Vertical() bool {
	return h.DY != 0
}

func (h Heading) dot(o Heading) int {
	return h.DX*o.DX + h.DY*o.DY
}

// Distance returns the Manhattan distance between two locations,
// ignoring wrap-around
func Distance(a, b Location) int {
	return intutils.Abs(a.X-b.X) + intutils.Abs(a.Y-b.Y)
}

// car is the physical state of a single agent in the World
type car struct {
	location    Location
	heading     Heading
	destination Location
	deadline    int

	// driver reports the intended next move of the car to other cars
	driver environment.RoutePlanner
}

var _ environment.World = (*World)(nil)

// World is a toroidal grid of intersections, each with a traffic light.
// Agent IDs index the cars in the order they were added.
type World struct {
	width, height int
	lights        []*TrafficLight // indexed by y*width + x
	cars          []*car
	dummies       []*dummy
	primary       environment.AgentID
	task          *Reach
	t             int

	deadlineFactor int
	minDistance    int

	starter      environment.Starter
	destinations environment.Starter
	rng          *rand.Rand
}

// NewWorld returns a new World with lights placed at every
// intersection and the configured number of dummy agents. The primary
// agent must be added with AddPrimary.
func NewWorld(c Config, seed uint64) (*World, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newWorld: %v", err)
	}

	starter, err := environment.NewCategoricalStarter(
		[]int{c.Width, c.Height, len(Headings)}, seed)
	if err != nil {
		return nil, fmt.Errorf("newWorld: %v", err)
	}
	destinations, err := environment.NewCategoricalStarter(
		[]int{c.Width, c.Height}, seed+1)
	if err != nil {
		return nil, fmt.Errorf("newWorld: %v", err)
	}

	rng := rand.New(rand.NewSource(seed + 2))
	w := &World{
		width:          c.Width,
		height:         c.Height,
		primary:        -1,
		task:           NewReach(c.Rewards),
		deadlineFactor: c.DeadlineFactor,
		minDistance:    c.MinDistance,
		starter:        starter,
		destinations:   destinations,
		rng:            rng,
	}

	w.lights = make([]*TrafficLight, c.Width*c.Height)
	for i := range w.lights {
		period := c.MinLightPeriod + rng.Intn(c.MaxLightPeriod-c.MinLightPeriod+1)
		w.lights[i] = NewTrafficLight(rng.Intn(2) == 0, period)
	}

	for i := 0; i < c.DummyAgents; i++ {
		d := newDummy(w, rng)
		d.id = w.addCar(d)
		w.dummies = append(w.dummies, d)
	}

	return w, nil
}

// AddPrimary adds the primary agent to the World and returns its ID
// together with the route planner which guides it
func (w *World) AddPrimary() (environment.AgentID, *Planner) {
	if w.primary >= 0 {
		panic("addPrimary: primary agent already added")
	}
	p := &Planner{world: w}
	p.id = w.addCar(p)
	w.primary = p.id
	return p.id, p
}

func (w *World) addCar(driver environment.RoutePlanner) environment.AgentID {
	c := &car{driver: driver}
	w.cars = append(w.cars, c)
	w.place(c)
	return environment.AgentID(len(w.cars) - 1)
}

// place puts a car at a random intersection with a random heading
func (w *World) place(c *car) {
	start := w.starter.Start()
	c.location = Location{start[0], start[1]}
	c.heading = Headings[start[2]]
}

// Reset starts a new trial. Lights and dummies are reset and the
// primary agent is given a new start, destination and deadline.
func (w *World) Reset() {
	w.t = 0
	for _, l := range w.lights {
		l.Reset(w.rng.Intn(2) == 0)
	}
	for _, c := range w.cars {
		w.place(c)
	}
	for _, d := range w.dummies {
		d.reset()
	}

	if w.primary < 0 {
		return
	}
	c := w.cars[w.primary]
	for {
		dest := w.destinations.Start()
		c.destination = Location{dest[0], dest[1]}
		if Distance(c.location, c.destination) >= w.minDistance {
			break
		}
	}
	c.deadline = Distance(c.location, c.destination) * w.deadlineFactor
}

// Tick advances the World by one time step: every dummy acts, the
// clock advances, lights switch and the primary deadline decreases.
func (w *World) Tick() {
	for _, d := range w.dummies {
		d.update()
	}

	w.t++
	for _, l := range w.lights {
		l.Update(w.t)
	}

	if w.primary >= 0 {
		w.cars[w.primary].deadline--
	}
}

// Time returns the number of ticks since the last reset
func (w *World) Time() int {
	return w.t
}

// Task returns the task of the primary agent
func (w *World) Task() *Reach {
	return w.task
}

// Dims gets the width and height of the World
func (w *World) Dims() (width, height int) {
	return w.width, w.height
}

// Location returns the intersection an agent is at
func (w *World) Location(id environment.AgentID) Location {
	return w.cars[id].location
}

// Heading returns the heading of an agent
func (w *World) Heading(id environment.AgentID) Heading {
	return w.cars[id].heading
}

// Destination returns the destination of an agent
func (w *World) Destination(id environment.AgentID) Location {
	return w.cars[id].destination
}

// Arrived returns whether the primary agent is at its destination
func (w *World) Arrived() bool {
	if w.primary < 0 {
		return false
	}
	c := w.cars[w.primary]
	return c.location == c.destination
}

// Deadline implements the environment.World interface
func (w *World) Deadline(id environment.AgentID) int {
	return w.cars[id].deadline
}

func (w *World) light(l Location) *TrafficLight {
	return w.lights[l.Y*w.width+l.X]
}

// Sense implements the environment.World interface. An agent sees the
// light facing it and the intended moves of other cars entering its
// intersection. When several cars approach from the same side, the
// more constraining intention is reported.
func (w *World) Sense(id environment.AgentID) state.Inputs {
	c := w.cars[id]

	in := state.Inputs{Light: state.Red}
	if w.light(c.location).Green(c.heading) {
		in.Light = state.Green
	}

	for otherID, other := range w.cars {
		if environment.AgentID(otherID) == id ||
			other.location != c.location || other.heading == c.heading {
			continue
		}

		intent := other.driver.NextWaypoint()
		switch {
		case c.heading.dot(other.heading) == -1:
			if in.Oncoming != action.Left {
				in.Oncoming = intent
			}

		case other.heading == c.heading.Left():
			if in.Right != action.Forward && in.Right != action.Left {
				in.Right = intent
			}

		default:
			if in.Left != action.Forward {
				in.Left = intent
			}
		}
	}
	return in
}

// Legal returns whether action a obeys the traffic rules given the
// percepts in
func Legal(in state.Inputs, a action.Action) bool {
	switch a {
	case action.Forward:
		return in.Light == state.Green

	case action.Left:
		return in.Light == state.Green &&
			(in.Oncoming == action.Idle || in.Oncoming == action.Left)

	case action.Right:
		return in.Light == state.Green || in.Left != action.Forward

	default:
		return true
	}
}

// Act implements the environment.World interface. Illegal moves leave
// the car in place. The primary agent receives the arrival bonus when
// its move ends at the destination.
func (w *World) Act(id environment.AgentID, a action.Action) float64 {
	if !a.Valid() {
		panic(fmt.Sprintf("act: invalid action %d", a))
	}
	c := w.cars[id]

	waypoint := c.driver.NextWaypoint()
	legal := Legal(w.Sense(id), a)

	if legal && a != action.Idle {
		switch a {
		case action.Left:
			c.heading = c.heading.Left()
		case action.Right:
			c.heading = c.heading.Right()
		}
		c.location = Location{
			X: (c.location.X + c.heading.DX + w.width) % w.width,
			Y: (c.location.Y + c.heading.DY + w.height) % w.height,
		}
	}

	reward := w.task.GetReward(legal, a, waypoint)
	if id == w.primary && c.location == c.destination {
		reward += w.task.ArrivalBonus(c.deadline)
	}
	return reward
}
