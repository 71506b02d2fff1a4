// SPDX-License-Identifier: MIT

package cli

// Globals are flags shared by every command.
type Globals struct {
	Verbose int `short:"v" type:"counter" help:"Increase progress logging on stderr (-v stages, -vv every pick)."`
}

// CLI is the lvsample command tree.
type CLI struct {
	Globals

	FPS      FPSCmd      `cmd:"fps" help:"Furthest point sampling of a population."`
	Random   RandomCmd   `cmd:"random" help:"Uniform random sampling without replacement."`
	Generate GenerateCmd `cmd:"generate" help:"Write a synthetic population as CSV."`
	Distance DistanceCmd `cmd:"distance" help:"Write the pairwise distance matrix as CSV."`
}
