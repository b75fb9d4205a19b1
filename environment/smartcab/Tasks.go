package smartcab

import (
	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/smartcab/action"
)

// Rewards holds the reward scheme of the Reach task
type Rewards struct {
	Waypoint    float64 // legal move along the next waypoint
	Wrong       float64 // legal move in another direction
	Idle        float64 // staying at the intersection
	Illegal     float64 // any move that breaks traffic rules
	Destination float64 // bonus for arriving before the deadline passes
}

// DefaultRewards returns the default reward scheme
func DefaultRewards() Rewards {
	return Rewards{
		Waypoint:    2.0,
		Wrong:       -0.5,
		Idle:        0.0,
		Illegal:     -1.0,
		Destination: 10.0,
	}
}

// Reach represents the task of driving to a destination before a
// deadline while obeying traffic rules
type Reach struct {
	rewards Rewards
}

// NewReach returns a new Reach task
func NewReach(r Rewards) *Reach {
	return &Reach{r}
}

// GetReward returns the reward for taking action a when the route
// planner suggested waypoint. The legal argument indicates whether the
// action obeyed the traffic rules.
func (r *Reach) GetReward(legal bool, a, waypoint action.Action) float64 {
	switch {
	case !legal:
		return r.rewards.Illegal
	case a == action.Idle:
		return r.rewards.Idle
	case a == waypoint:
		return r.rewards.Waypoint
	default:
		return r.rewards.Wrong
	}
}

// ArrivalBonus returns the bonus for arriving at the destination with
// the argument deadline remaining
func (r *Reach) ArrivalBonus(deadline int) float64 {
	if deadline >= 0 {
		return r.rewards.Destination
	}
	return 0
}

// Min returns the minimum reward attainable on a single step of the Task
func (r *Reach) Min() float64 {
	rewards := []float64{r.rewards.Waypoint, r.rewards.Wrong,
		r.rewards.Idle, r.rewards.Illegal}
	return floats.Min(rewards)
}

// Max returns the maximum reward attainable on a single step of the Task
func (r *Reach) Max() float64 {
	rewards := []float64{r.rewards.Waypoint, r.rewards.Wrong,
		r.rewards.Idle, r.rewards.Illegal}
	return floats.Max(rewards) + r.rewards.Destination
}
