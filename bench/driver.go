// Package bench runs repeated timed trials of the A* and push/pop
// workloads and summarises their timings.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/rogpeppe/pqbench/internal/log"
)

// DefaultIterations is the number of timed iterations
// used when Driver.Iterations is zero.
const DefaultIterations = 100

// Trial is one unit of work to be timed.
// A non-nil error aborts the run.
type Trial func() error

// Named is a trial with a name.
type Named struct {
	Name  string
	Trial Trial
}

// Driver times trials.
type Driver struct {
	// Iterations holds the number of timed calls per trial.
	Iterations int
	// Warmup holds the number of untimed calls made first.
	Warmup int
}

// Run calls trial d.Warmup times, then d.Iterations times recording
// how long each call takes. It stops early, returning ctx.Err(),
// if ctx is cancelled between calls.
func (d *Driver) Run(ctx context.Context, name string, trial Trial) (Result, error) {
	ctx = log.AddTags(ctx, "trial", name)
	n := d.Iterations
	if n <= 0 {
		n = DefaultIterations
	}
	log.Debugw(ctx, "warming up", "calls", d.Warmup)
	for i := 0; i < d.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := trial(); err != nil {
			return Result{}, fmt.Errorf("%s: warmup %d: %w", name, i, err)
		}
	}
	r := Result{
		Name:    name,
		Samples: make([]time.Duration, 0, n),
	}
	log.Debugw(ctx, "timing", "calls", n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		t0 := time.Now()
		err := trial()
		elapsed := time.Since(t0)
		if err != nil {
			return r, fmt.Errorf("%s: iteration %d: %w", name, i, err)
		}
		r.Samples = append(r.Samples, elapsed)
	}
	log.Infow(ctx, "trial finished", "calls", n, "mean", r.Mean(), "median", r.Median())
	return r, nil
}

// RunAll runs each trial in turn, returning the results
// of all the trials that completed.
func (d *Driver) RunAll(ctx context.Context, trials []Named) ([]Result, error) {
	results := make([]Result, 0, len(trials))
	for _, t := range trials {
		r, err := d.Run(ctx, t.Name, t.Trial)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Result holds the timings of one trial.
type Result struct {
	Name    string
	Samples []time.Duration
}

func (r Result) data() stats.Float64Data {
	data := make(stats.Float64Data, len(r.Samples))
	for i, s := range r.Samples {
		data[i] = float64(s)
	}
	return data
}

func duration(f float64, err error) time.Duration {
	if err != nil {
		// No samples, or a percentile out of range.
		return 0
	}
	return time.Duration(f)
}

// Mean returns the mean sample.
func (r Result) Mean() time.Duration {
	return duration(stats.Mean(r.data()))
}

// Median returns the median sample.
func (r Result) Median() time.Duration {
	return duration(stats.Median(r.data()))
}

// Min returns the fastest sample.
func (r Result) Min() time.Duration {
	return duration(stats.Min(r.data()))
}

// Max returns the slowest sample.
func (r Result) Max() time.Duration {
	return duration(stats.Max(r.data()))
}

// StdDev returns the population standard deviation of the samples.
func (r Result) StdDev() time.Duration {
	return duration(stats.StandardDeviation(r.data()))
}

// Percentile returns the sample at the given percentile, in (0, 100].
func (r Result) Percentile(p float64) time.Duration {
	return duration(stats.Percentile(r.data(), p))
}
