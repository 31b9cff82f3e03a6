package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/rogpeppe/pqbench/bench"
)

const baselineBackend = "binary"

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgHiRed)
)

// printReport writes a table with one row per trial. Trials
// without a result are listed as not run.
func printReport(w io.Writer, results []bench.Result, trials []bench.Named) {
	byName := make(map[string]bench.Result)
	for _, r := range results {
		byName[r.Name] = r
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"trial", "calls", "mean", "median", "p99", "min", "stddev", "vs " + baselineBackend, "status"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, t := range trials {
		r, ok := byName[t.Name]
		if !ok {
			table.Append([]string{t.Name, "-", "-", "-", "-", "-", "-", "-", failColor.Sprint("not run")})
			continue
		}
		table.Append([]string{
			r.Name,
			fmt.Sprint(len(r.Samples)),
			formatDuration(r.Mean()),
			formatDuration(r.Median()),
			formatDuration(r.Percentile(99)),
			formatDuration(r.Min()),
			formatDuration(r.StdDev()),
			speedup(r, byName),
			okColor.Sprint("ok"),
		})
	}
	table.Render()
}

// speedup returns how many times faster r's median is than
// the median of the baseline backend for the same workload.
func speedup(r bench.Result, byName map[string]bench.Result) string {
	workload, _, ok := strings.Cut(r.Name, "_")
	if !ok {
		return "-"
	}
	base, ok := byName[workload+"_"+baselineBackend]
	if !ok || r.Median() == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", float64(base.Median())/float64(r.Median()))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d >= time.Microsecond:
		return d.Round(10 * time.Nanosecond).String()
	}
	return d.String()
}
