package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/smartcab/action"
	"github.com/samuelfneumann/smartcab/agent/tabular/qlearning"
	"github.com/samuelfneumann/smartcab/experiment"
	"github.com/samuelfneumann/smartcab/experiment/tracker"
	"github.com/samuelfneumann/smartcab/experiment/trackers"
	"github.com/samuelfneumann/smartcab/utils/diagnostic"
	"github.com/samuelfneumann/smartcab/utils/matutils"
)

var (
	configFile = flag.String("config", "", "JSON experiment configuration "+
		"(defaults are used if empty)")
	trials   = flag.Uint("trials", experiment.DefaultTrials, "number of trials")
	seed     = flag.Uint64("seed", experiment.DefaultSeed, "random seed")
	quiet    = flag.Bool("quiet", false, "suppress per-tick records")
	color    = flag.Bool("color", true, "colour output")
	progress = flag.Bool("progress", false, "display a progress bar "+
		"(implies -quiet)")
	dataDir = flag.String("data", "", "directory to save per-trial "+
		"returns, lengths and outcomes in")
	chartFile = flag.String("chart", "", "HTML file to render a chart "+
		"of returns and success rate to")
	dump = flag.Bool("dump", false, "print the learned Q table")
)

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, "", 0)
	au := aurora.NewAurora(*color)

	c, err := config()
	if err != nil {
		logger.Fatal(err)
	}

	returns := trackers.NewReturn(dataFile("returns.bin"))
	lengths := trackers.NewEpisodeLength(dataFile("lengths.bin"))
	success := trackers.NewSuccess(dataFile("success.bin"))
	t := []tracker.Tracker{returns, lengths, success}
	if *chartFile != "" {
		t = append(t, trackers.NewChart(*chartFile, "Smartcab Q-learning",
			10))
	}
	if *progress {
		*quiet = true
		t = append(t, trackers.NewProgress(os.Stdout, 50, int(c.Trials)))
	}

	exp, err := c.CreateExp(t...)
	if err != nil {
		logger.Fatal(err)
	}
	online := exp.(*experiment.Online)

	q, ok := online.Agent.(*qlearning.QLearning)
	if ok {
		q.SetPrinter(diagnostic.New(os.Stdout, *color, !*quiet))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt,
		syscall.SIGTERM)
	defer stop()

	if err := exp.Run(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Fatal(err)
		}
		logger.Println(au.Yellow("interrupted, summarising finished trials"))
	}

	if *dataDir != "" {
		if err := os.MkdirAll(*dataDir, 0755); err != nil {
			logger.Fatal(err)
		}
	}
	if err := exp.Save(); err != nil {
		logger.Fatal(err)
	}

	summarise(logger, au, online.Trials(), returns, lengths, success)
	if e, ok := online.Environment.(interface {
		RewardSpan() (float64, float64)
	}); ok {
		min, max := e.RewardSpan()
		logger.Printf("step rewards in [%v, %v]", min, max)
	}

	if ok {
		logger.Printf("Q table: %d state-action values, %d policy entries",
			q.Values().Len(), q.Policy().Len())
		if *dump {
			dumpTable(q)
		}
	}
}

// config loads the experiment configuration and applies flags given on
// the command line
func config() (experiment.Config, error) {
	c := experiment.DefaultConfig()
	if *configFile != "" {
		var err error
		if c, err = experiment.LoadConfig(*configFile); err != nil {
			return c, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trials":
			c.Trials = *trials
		case "seed":
			c.Seed = *seed
		}
	})

	return c, c.Validate()
}

func dataFile(name string) string {
	if *dataDir == "" {
		return ""
	}
	return filepath.Join(*dataDir, name)
}

func summarise(logger *log.Logger, au aurora.Aurora, finished uint,
	returns *trackers.Return, lengths *trackers.EpisodeLength,
	success *trackers.Success) {
	if finished == 0 {
		logger.Println(au.Red("no trials finished"))
		return
	}

	rate := float64(success.Successes()) / float64(finished)
	r := au.Green(fmt.Sprintf("%.2f%%", rate*100))
	if rate < 0.5 {
		r = au.Red(fmt.Sprintf("%.2f%%", rate*100))
	}

	logger.Printf("trials: %d  |  arrived: %d (%v)", finished,
		success.Successes(), r)
	logger.Printf("mean return: %.3f  |  mean length: %.2f",
		stat.Mean(returns.Data(), nil), stat.Mean(lengths.Data(), nil))
}

// dumpTable prints the learned Q table, one row per visited state
func dumpTable(q *qlearning.QLearning) {
	m, states := q.Values().Matrix()
	if m == nil {
		fmt.Println("Q table is empty")
		return
	}

	v := matutils.RowMax(m)
	fmt.Printf("%-48v %v  %v  %v\n", "state", action.All, "value", "policy")
	for i, s := range states {
		row := matutils.Format(m.RowView(i).T())
		policy := "-"
		if a, ok := q.Policy().Get(s); ok {
			policy = a.String()
		}
		fmt.Printf("%-48v %v  %.3f  %v\n", s, row, v.AtVec(i), policy)
	}
}
