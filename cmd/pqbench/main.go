// Command pqbench times the radix and binary heap queues
// on grid A* search and on a synthetic push/pop churn.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rogpeppe/pqbench/internal/log"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pqbench",
	Short: "Compare monotone radix heap and binary heap priority queues",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Setup(os.Stderr, verbose)
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bailf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each trial's progress")
}
