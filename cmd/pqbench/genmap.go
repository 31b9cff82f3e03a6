package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/rogpeppe/pqbench/grid"
)

var (
	genHeight  uint32
	genWidth   uint32
	genDensity float64
	genSeed    int64
	genOutput  string
	genOpen    []string
)

var genmapCmd = &cobra.Command{
	Use:   "genmap",
	Short: "Write a random octile map for use with run --map",
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		if genOutput == "" {
			err = genmap(os.Stdout)
		} else {
			err = genmapFile(genOutput)
		}
		if err != nil {
			bailf("pqbench: %s", err)
		}
	},
}

// genmapFile writes the generated map to the named file.
func genmapFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("cannot close %s: %w", path, closeErr)
		}
	}()
	return genmap(f)
}

func genmap(w io.Writer) error {
	if genDensity < 0 || genDensity > 1 {
		return fmt.Errorf("density %v out of range [0, 1]", genDensity)
	}
	m := grid.Random(rand.New(rand.NewSource(genSeed)), genHeight, genWidth, genDensity)
	for _, s := range genOpen {
		p, err := parsePos(s)
		if err != nil {
			return fmt.Errorf("bad --open: %w", err)
		}
		if !m.In(p) {
			return fmt.Errorf("--open position %v outside %dx%d map", p, genHeight, genWidth)
		}
		m.Set(p, true)
	}
	return grid.Format(w, m)
}

func init() {
	rootCmd.AddCommand(genmapCmd)

	genmapCmd.PersistentFlags().Uint32Var(&genHeight, "height", defaultHeight, "number of rows")
	genmapCmd.PersistentFlags().Uint32Var(&genWidth, "width", defaultWidth, "number of columns")
	genmapCmd.PersistentFlags().Float64VarP(&genDensity, "density", "d", 0.2, "probability that a cell is impassable")
	genmapCmd.PersistentFlags().Int64VarP(&genSeed, "seed", "s", 1, "random seed")
	genmapCmd.PersistentFlags().StringVarP(&genOutput, "output", "o", "", "output file (default: stdout)")
	genmapCmd.PersistentFlags().StringArrayVar(&genOpen, "open", []string{defaultFrom, defaultTo}, "positions forced passable, as row,col")
}
