package trackers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/experiment/tracker"
	"github.com/samuelfneumann/smartcab/state"
	ts "github.com/samuelfneumann/smartcab/timestep"
)

// episode returns the timesteps of an episode with the argument
// rewards, ending with end
func episode(end ts.EndType, rewards ...float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, state.Inputs{},
		action.Forward, 10, 0)}
	for i, r := range rewards {
		step := ts.New(ts.Mid, r, state.Inputs{}, action.Forward, 10-i-1,
			i+1)
		if i == len(rewards)-1 {
			step.StepType = ts.Last
			step.SetEnd(end)
		}
		steps = append(steps, step)
	}
	return steps
}

func track(t tracker.Tracker, episodes ...[]ts.TimeStep) {
	for _, e := range episodes {
		for _, step := range e {
			t.Track(step)
		}
	}
}

func TestReturn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "return.bin")
	r := NewReturn(path)
	track(r, episode(ts.Arrived, 2, -0.5, 12), episode(ts.Timeout, -1, 0))

	want := []float64{13.5, -1}
	if data := r.Data(); len(data) != 2 || data[0] != want[0] ||
		data[1] != want[1] {
		t.Fatalf("track: want %v, have %v", want, data)
	}

	if err := r.Save(); err != nil {
		t.Fatal(err)
	}
	data, err := tracker.LoadData(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 2 || data[0] != want[0] || data[1] != want[1] {
		t.Errorf("loadData: want %v, have %v", want, data)
	}
}

func TestReturnNonSequential(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("track: expected panic for non-sequential timesteps")
		}
	}()

	r := NewReturn("")
	steps := episode(ts.Arrived, 1, 2, 3)
	r.Track(steps[0])
	r.Track(steps[2])
}

func TestEpisodeLengthAndSuccess(t *testing.T) {
	lengths := NewEpisodeLength(filepath.Join(t.TempDir(), "lengths.bin"))
	success := NewSuccess("")
	episodes := [][]ts.TimeStep{
		episode(ts.Arrived, 1, 2, 3),
		episode(ts.Timeout, 1),
		episode(ts.Arrived, 0, 0),
	}
	track(lengths, episodes...)
	track(success, episodes...)

	wantLengths := []float64{3, 1, 2}
	for i, l := range lengths.Data() {
		if l != wantLengths[i] {
			t.Errorf("episodeLength: want %v, have %v", wantLengths,
				lengths.Data())
			break
		}
	}
	if err := lengths.Save(); err != nil {
		t.Error(err)
	}

	if n := success.Successes(); n != 2 {
		t.Errorf("successes: want 2, have %d", n)
	}
	if data := success.Data(); len(data) != 3 || data[1] != 0 {
		t.Errorf("success: have %v", data)
	}
}

func TestChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.html")
	c := NewChart(path, "Smartcab", 2)
	track(c, episode(ts.Timeout, -1), episode(ts.Arrived, 12),
		episode(ts.Arrived, 12))

	rate := c.SuccessRate()
	want := []float64{0, 0.5, 1}
	for i := range want {
		if rate[i] != want[i] {
			t.Fatalf("successRate: want %v, have %v", want, rate)
		}
	}

	if err := c.Save(); err != nil {
		t.Fatal(err)
	}
	html, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "Smartcab") {
		t.Error("save: chart title missing from rendered page")
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 10, 2)

	track(p, episode(ts.Arrived, 1))
	if !strings.Contains(buf.String(), "50.00%") {
		t.Errorf("track: want 50%% progress, have %q", buf.String())
	}

	track(p, episode(ts.Arrived, 1))
	if !strings.Contains(buf.String(), "100.00%") {
		t.Errorf("track: want 100%% progress, have %q", buf.String())
	}
	if err := p.Save(); err != nil {
		t.Error(err)
	}
}

func TestSaveDataErrors(t *testing.T) {
	if err := tracker.SaveData("", []float64{1}); err != nil {
		t.Errorf("saveData: empty filename should be skipped, have %v", err)
	}

	path := filepath.Join(t.TempDir(), "missing", "returns.bin")
	if err := tracker.SaveData(path, []float64{1}); err == nil {
		t.Error("saveData: expected error for a missing directory")
	}

	c := NewChart(path, "Smartcab", 1)
	track(c, episode(ts.Arrived, 12))
	if err := c.Save(); err == nil {
		t.Error("save: expected error for a missing directory")
	}
}
