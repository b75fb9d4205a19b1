// Package diagnostic prints per-tick agent diagnostics and warnings
package diagnostic

import (
	"fmt"
	"io"
	"log"

	"github.com/logrusorgru/aurora"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/state"
)

// Printer writes diagnostic records through a log.Logger. A nil
// *Printer discards everything written to it.
type Printer struct {
	logger  *log.Logger
	au      aurora.Aurora
	records bool
}

// New returns a Printer writing to w. If colors is true, rewards and
// warnings are coloured with ANSI escape codes. If records is false,
// per-tick records are suppressed and only warnings are written.
func New(w io.Writer, colors, records bool) *Printer {
	return &Printer{
		logger:  log.New(w, "", 0),
		au:      aurora.NewAurora(colors),
		records: records,
	}
}

// Record writes a single per-tick record
func (p *Printer) Record(deadline int, in state.Inputs, a action.Action,
	reward float64) {
	if p == nil || !p.records {
		return
	}

	var r aurora.Value
	switch {
	case reward > 0:
		r = p.au.Green(reward)
	case reward < 0:
		r = p.au.Red(reward)
	default:
		r = p.au.Yellow(reward)
	}

	p.logger.Printf("LearningAgent.update(): deadline = %d, inputs = %v, "+
		"action = %v, reward = %v", deadline, in, a, r)
}

// Warnf writes a warning
func (p *Printer) Warnf(format string, v ...interface{}) {
	if p == nil {
		return
	}
	p.logger.Printf("%v %v", p.au.Magenta("Warning:"),
		fmt.Sprintf(format, v...))
}
