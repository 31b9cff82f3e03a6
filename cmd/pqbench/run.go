package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rogpeppe/pqbench/bench"
	"github.com/rogpeppe/pqbench/grid"
	"github.com/rogpeppe/pqbench/internal/log"
	"github.com/rogpeppe/pqbench/workload"
)

var (
	runMap        string
	runFrom       string
	runTo         string
	runExpect     int64
	runIterations int
	runWarmup     int
	runPushPop    int
	runTrials     []string
)

// Without a map, search an open grid between the same cells
// as the classic den203d benchmark.
const (
	defaultHeight = 64
	defaultWidth  = 96
	defaultFrom   = "40,75"
	defaultTo     = "20,10"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark trials and print a timing report",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		if err := run(ctx); err != nil {
			bailf("pqbench: %s", err)
		}
	},
}

func run(ctx context.Context) error {
	m, name, err := loadMap(runMap)
	if err != nil {
		return err
	}
	ctx = log.AddTags(ctx, "map", name)
	from, err := parsePos(runFrom)
	if err != nil {
		return fmt.Errorf("bad --from: %w", err)
	}
	to, err := parsePos(runTo)
	if err != nil {
		return fmt.Errorf("bad --to: %w", err)
	}
	cost, err := bench.CheckConsistent(m, from, to)
	if err != nil {
		return err
	}
	log.Infow(ctx, "backends agree", "from", from, "to", to, "cost", cost)
	expected, err := expectedCost(cost, runExpect)
	if err != nil {
		return err
	}
	if expected != cost {
		log.Warnw(ctx, "expected cost differs from the agreed cost; search trials will fail", "expect", expected, "cost", cost)
	}
	trials, err := selectTrials(bench.Suite(bench.Search{
		Map:      m,
		From:     from,
		To:       to,
		Expected: expected,
	}, runPushPop), runTrials)
	if err != nil {
		return err
	}
	d := &bench.Driver{
		Iterations: runIterations,
		Warmup:     runWarmup,
	}
	results, err := d.RunAll(ctx, trials)
	if err != nil {
		log.Errorw(ctx, "run stopped early", "completed", len(results), "trials", len(trials), "error", err)
	}
	// Report whatever completed, even on failure.
	printReport(os.Stdout, results, trials)
	return err
}

// expectedCost returns the cost the search trials must find:
// expect if it is non-negative, otherwise the computed cost.
func expectedCost(computed uint32, expect int64) (uint32, error) {
	if expect < 0 {
		return computed, nil
	}
	if expect > math.MaxUint32 {
		return 0, fmt.Errorf("--expect %d out of range", expect)
	}
	return uint32(expect), nil
}

func loadMap(path string) (*grid.Bool2D, string, error) {
	if path == "" {
		return grid.Open(defaultHeight, defaultWidth), fmt.Sprintf("open-%dx%d", defaultHeight, defaultWidth), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open map: %w", err)
	}
	defer f.Close()
	m, err := grid.Parse(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, filepath.Base(path), nil
}

// parsePos parses a position written as "row,col".
func parsePos(s string) (grid.Pos, error) {
	row, col, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Pos{}, fmt.Errorf("position %q is not of the form row,col", s)
	}
	r, err := strconv.ParseUint(strings.TrimSpace(row), 10, 32)
	if err != nil {
		return grid.Pos{}, fmt.Errorf("bad row in %q: %w", s, err)
	}
	c, err := strconv.ParseUint(strings.TrimSpace(col), 10, 32)
	if err != nil {
		return grid.Pos{}, fmt.Errorf("bad column in %q: %w", s, err)
	}
	return grid.Pos{Row: uint32(r), Col: uint32(c)}, nil
}

// selectTrials returns the trials with the given names,
// in suite order, or all of them if names is empty.
func selectTrials(all []bench.Named, names []string) ([]bench.Named, error) {
	if len(names) == 0 {
		return all, nil
	}
	want := make(map[string]bool)
	for _, name := range names {
		want[name] = true
	}
	var selected []bench.Named
	for _, t := range all {
		if want[t.Name] {
			selected = append(selected, t)
			delete(want, t.Name)
		}
	}
	for name := range want {
		return nil, fmt.Errorf("unknown trial %q", name)
	}
	return selected, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.PersistentFlags().StringVarP(&runMap, "map", "m", "", "octile map file (default: open 64x96 grid)")
	runCmd.PersistentFlags().StringVarP(&runFrom, "from", "f", defaultFrom, "search source as row,col")
	runCmd.PersistentFlags().StringVarP(&runTo, "to", "t", defaultTo, "search target as row,col")
	runCmd.PersistentFlags().Int64VarP(&runExpect, "expect", "e", -1, "expected path cost (default: computed)")
	runCmd.PersistentFlags().IntVarP(&runIterations, "iterations", "n", bench.DefaultIterations, "timed calls per trial")
	runCmd.PersistentFlags().IntVarP(&runWarmup, "warmup", "w", 5, "untimed calls per trial")
	runCmd.PersistentFlags().IntVarP(&runPushPop, "pushpop", "p", workload.Iterations, "rounds per push/pop call")
	runCmd.PersistentFlags().StringSliceVar(&runTrials, "trial", nil, "trials to run (default: all)")
}
