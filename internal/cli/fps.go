// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsample/dataset"
	"github.com/katalvlaran/lvsample/fps"
	"github.com/katalvlaran/lvsample/norm"
)

// FPSCmd runs furthest point sampling.
type FPSCmd struct {
	Size            int       `required:"" help:"Number of points to add."`
	Norm            norm.Norm `default:"2" help:"Distance norm: positive integer p, or inf."`
	InitIndex       []int     `name:"init-index" sep:"," xor:"init" help:"Initial set as population indices (comma separated)."`
	InitPoints      string    `name:"init-points" xor:"init" help:"Initial set as a CSV file of coordinates."`
	EmptyInit       bool      `name:"empty-init" xor:"init" help:"Start from an empty initial set (first pick is index 0)."`
	Workers         int       `default:"1" help:"Goroutines relaxing candidates per pick."`
	DistanceWorkers int       `name:"distance-workers" default:"0" help:"Goroutines building the distance matrix (0 = GOMAXPROCS)."`
	Out             string    `short:"o" default:"-" help:"Output JSON path ('-' for stdout)."`

	Population string `arg:"" help:"Population CSV (.gz, .zst, .lz4 accepted; '-' for stdin)."`
}

// fpsReport is the JSON document written by FPSCmd. Non-finite minimum
// distances (first pick from an empty set) are encoded as null.
type fpsReport struct {
	Indices      []int       `json:"indices"`
	Points       [][]float64 `json:"points"`
	Initial      []int       `json:"initial"`
	MinDistances []*float64  `json:"min_distances"`
}

func (c *FPSCmd) Run(ctx context.Context, g *Globals) error {
	if c.Workers < 1 {
		return fmt.Errorf("fps: --workers must be >= 1, got %d", c.Workers)
	}
	if c.DistanceWorkers < 0 {
		return fmt.Errorf("fps: --distance-workers must be >= 0, got %d", c.DistanceWorkers)
	}
	pop, err := dataset.LoadCSV(c.Population)
	if err != nil {
		return err
	}

	opts := []fps.Option{
		fps.WithNorm(c.Norm),
		fps.WithWorkers(c.Workers),
		fps.WithVerbose(g.Verbose),
		fps.WithLogger(newLogger(stderr, g.Verbose)),
	}
	if c.DistanceWorkers > 0 {
		opts = append(opts, fps.WithDistanceWorkers(c.DistanceWorkers))
	}
	switch {
	case len(c.InitIndex) > 0:
		opts = append(opts, fps.WithInitIndices(c.InitIndex...))
	case c.InitPoints != "":
		rows, err := dataset.LoadCSV(c.InitPoints)
		if err != nil {
			return fmt.Errorf("fps: --init-points: %w", err)
		}
		opts = append(opts, fps.WithInitPoints(rows...))
	case c.EmptyInit:
		opts = append(opts, fps.WithInitIndices())
	}

	res, err := fps.Sample(ctx, pop, c.Size, opts...)
	if err != nil {
		return err
	}

	return dataset.SaveJSON(c.Out, fpsReport{
		Indices:      res.Indices,
		Points:       res.Points,
		Initial:      res.Initial,
		MinDistances: finiteOrNull(res.MinDistances),
	})
}

func finiteOrNull(xs []float64) []*float64 {
	out := make([]*float64, len(xs))
	for i := range xs {
		if !math.IsInf(xs[i], 0) && !math.IsNaN(xs[i]) {
			out[i] = &xs[i]
		}
	}

	return out
}
