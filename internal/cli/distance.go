// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsample/dataset"
	"github.com/katalvlaran/lvsample/distance"
	"github.com/katalvlaran/lvsample/norm"
)

// DistanceCmd writes the N×N distance matrix of a population.
type DistanceCmd struct {
	Norm    norm.Norm `default:"2" help:"Distance norm: positive integer p, or inf."`
	Workers int       `default:"0" help:"Goroutines building the matrix (0 = GOMAXPROCS)."`
	Out     string    `short:"o" default:"-" help:"Output CSV path ('-' for stdout)."`

	Population string `arg:"" help:"Population CSV (.gz, .zst, .lz4 accepted; '-' for stdin)."`
}

func (c *DistanceCmd) Run(ctx context.Context, g *Globals) error {
	if c.Workers < 0 {
		return fmt.Errorf("distance: --workers must be >= 0, got %d", c.Workers)
	}
	pop, err := dataset.LoadCSV(c.Population)
	if err != nil {
		return err
	}
	var opts []distance.Option
	if c.Workers > 0 {
		opts = append(opts, distance.WithWorkers(c.Workers))
	}
	d, err := distance.Pairwise(ctx, pop, c.Norm, opts...)
	if err != nil {
		return err
	}
	if g.Verbose > 0 {
		newLogger(stderr, g.Verbose).InfoContext(ctx, "distance: matrix built", "points", d.Rows(), "norm", c.Norm.String())
	}

	return dataset.SaveCSV(c.Out, d.ToRows())
}
