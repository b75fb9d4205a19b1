package trackers

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"

	ts "github.com/samuelfneumann/smartcab/timestep"
	"github.com/samuelfneumann/smartcab/utils/intutils"
)

// Chart tracks episodic returns and arrivals and saves them as an HTML
// line chart. Arrivals are plotted as a moving success rate over the
// last window episodes.
type Chart struct {
	returns  *Return
	success  *Success
	window   int
	title    string
	filename string
}

// NewChart returns a new *Chart Tracker which renders to filename
func NewChart(filename, title string, window int) *Chart {
	return &Chart{
		returns:  NewReturn(""),
		success:  NewSuccess(""),
		window:   intutils.Max(window, 1),
		title:    title,
		filename: filename,
	}
}

// Track tracks the return and outcome of episodes
func (c *Chart) Track(step ts.TimeStep) {
	c.returns.Track(step)
	c.success.Track(step)
}

// SuccessRate returns the moving success rate after each episode
func (c *Chart) SuccessRate() []float64 {
	outcomes := c.success.Data()
	rate := make([]float64, len(outcomes))
	for i := range outcomes {
		start := intutils.Max(i+1-c.window, 0)
		rate[i] = stat.Mean(outcomes[start:i+1], nil)
	}
	return rate
}

// Line returns the line chart of the tracked data
func (c *Chart) Line() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: c.title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	returns := c.returns.Data()
	episodes := make([]string, len(returns))
	for i := range episodes {
		episodes[i] = fmt.Sprintf("%d", i+1)
	}
	line.SetXAxis(episodes)

	line.AddSeries("Return", lineData(returns))
	line.AddSeries(fmt.Sprintf("Success rate (%d episodes)", c.window),
		lineData(c.SuccessRate()))

	return line
}

func lineData(data []float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(data))
	for _, v := range data {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}

// Save renders the chart to disk. Nothing is saved if the filename is
// empty.
func (c *Chart) Save() (err error) {
	if c.filename == "" {
		return nil
	}

	page := components.NewPage()
	page.AddCharts(c.Line())

	f, err := os.Create(c.filename)
	if err != nil {
		return fmt.Errorf("save: could not create chart file: %v", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save: could not close chart file: %v", cerr)
		}
	}()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("save: could not render chart: %v", err)
	}
	return nil
}
