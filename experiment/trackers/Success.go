package trackers

import (
	"github.com/samuelfneumann/smartcab/experiment/tracker"
	ts "github.com/samuelfneumann/smartcab/timestep"
)

// Success tracks whether each episode ended with the agent arriving at
// its destination. Arrivals are saved as 1 and timeouts as 0.
type Success struct {
	outcomes []float64
	filename string
}

// NewSuccess returns a new *Success Tracker
func NewSuccess(filename string) *Success {
	return &Success{filename: filename}
}

// Track records the outcome of an episode on its last timestep
func (s *Success) Track(step ts.TimeStep) {
	if !step.Last() {
		return
	}

	outcome := 0.0
	if step.EndType() == ts.Arrived {
		outcome = 1.0
	}
	s.outcomes = append(s.outcomes, outcome)
}

// Data returns the outcomes of all finished episodes
func (s *Success) Data() []float64 {
	return s.outcomes
}

// Successes returns the number of episodes which ended in arrival
func (s *Success) Successes() int {
	n := 0
	for _, o := range s.outcomes {
		if o == 1.0 {
			n++
		}
	}
	return n
}

// Save saves the data tracked by the Success Tracker to disk.
func (s *Success) Save() error {
	return tracker.SaveData(s.filename, s.outcomes)
}
