package environment

import "github.com/samuelfneumann/smartcab/timestep"

// DeadlineLimit implements the Ender interface to end episodes when the
// deadline of the timestep runs out
type DeadlineLimit struct {
	enforce   bool
	hardLimit int
}

// NewDeadlineLimit creates and returns a new deadline limit. If enforce
// is true, episodes end as soon as the deadline reaches 0. Episodes
// always end once the deadline reaches hardLimit, which should be
// non-positive.
func NewDeadlineLimit(enforce bool, hardLimit int) DeadlineLimit {
	return DeadlineLimit{enforce, hardLimit}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended End() will modify the timestep so that its StepType
// field is timestep.Last and its EndType is timestep.Timeout
func (d DeadlineLimit) End(t *timestep.TimeStep) bool {
	if t.Deadline <= d.hardLimit || (d.enforce && t.Deadline <= 0) {
		t.StepType = timestep.Last
		t.SetEnd(timestep.Timeout)
		return true
	}
	return false
}
