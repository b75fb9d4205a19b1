package trackers

import (
	"fmt"
	"io"

	ts "github.com/samuelfneumann/smartcab/timestep"
	"github.com/samuelfneumann/smartcab/utils/progressbar"
)

// Progress displays a progress bar of finished episodes. It saves no
// data.
type Progress struct {
	bar *progressbar.ManualProgressBar
	out io.Writer
}

// NewProgress returns a new *Progress Tracker for an experiment of
// trials episodes
func NewProgress(out io.Writer, width, trials int) *Progress {
	return &Progress{
		bar: progressbar.NewManualProgressBar(out, width, trials),
		out: out,
	}
}

// Track advances the progress bar when an episode finishes
func (p *Progress) Track(step ts.TimeStep) {
	if step.Last() {
		p.bar.Increment()
		p.bar.Display()
	}
}

// Save ends the progress bar line
func (p *Progress) Save() error {
	_, err := fmt.Fprintln(p.out)
	return err
}
