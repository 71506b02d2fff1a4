// SPDX-License-Identifier: MIT

// Package cli implements the lvsample command line: kong command structs,
// logger setup and the signal-aware entry point.
package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// Run parses os.Args into cmd and executes the selected command with a
// context cancelled on SIGINT / SIGTERM.
func Run(cmd *CLI, name, description string) {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	parser, err := newParser(ctx, cmd,
		kong.Name(name),
		kong.Description(description),
		kong.UsageOnError(),
	)
	if err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		parser.FatalIfErrorf(err)
	}

	err = kctx.Run()
	parser.FatalIfErrorf(err)
}

// newParser builds the kong parser with ctx and the global flags bound for
// command Run methods.
func newParser(ctx context.Context, cmd *CLI, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Bind(&cmd.Globals),
		kong.ConfigureHelp(kong.HelpOptions{
			Tree: true,
		}),
	}, opts...)

	return kong.New(cmd, opts...)
}
