// SPDX-License-Identifier: MIT

package cli

import (
	"context"

	"github.com/katalvlaran/lvsample/dataset"
	"github.com/katalvlaran/lvsample/sampling"
)

// RandomCmd draws a uniform random sample without replacement.
type RandomCmd struct {
	Size int    `required:"" help:"Number of points to draw."`
	Seed int64  `default:"0" help:"RNG seed (0 selects the fixed default seed)."`
	Out  string `short:"o" default:"-" help:"Output JSON path ('-' for stdout)."`

	Population string `arg:"" help:"Population CSV (.gz, .zst, .lz4 accepted; '-' for stdin)."`
}

type randomReport struct {
	Indices []int       `json:"indices"`
	Points  [][]float64 `json:"points"`
}

func (c *RandomCmd) Run(ctx context.Context, g *Globals) error {
	pop, err := dataset.LoadCSV(c.Population)
	if err != nil {
		return err
	}
	sel, err := sampling.RandomPoints(pop, c.Size, c.Seed)
	if err != nil {
		return err
	}
	if g.Verbose > 0 {
		newLogger(stderr, g.Verbose).InfoContext(ctx, "random: sampled", "size", c.Size, "population", len(pop))
	}

	return dataset.SaveJSON(c.Out, randomReport{Indices: sel.Indices, Points: sel.Points})
}
