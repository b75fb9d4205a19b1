package progressbar

import (
	"bytes"
	"strings"
	"testing"
)

func TestManualProgressBar(t *testing.T) {
	var buf bytes.Buffer
	p := NewManualProgressBar(&buf, 4, 2)

	if p.Progress() != 0 {
		t.Errorf("progress: want 0, have %v", p.Progress())
	}

	p.Increment()
	p.Display()
	if !strings.Contains(buf.String(), "|██  |") {
		t.Errorf("display: want half full bar, have %q", buf.String())
	}

	// Progress saturates at the maximum
	p.Increment()
	p.Increment()
	if p.Progress() != 1 {
		t.Errorf("progress: want 1, have %v", p.Progress())
	}
	if s := p.String(); !strings.Contains(s, "100.00%") {
		t.Errorf("string: want 100%%, have %q", s)
	}
}
