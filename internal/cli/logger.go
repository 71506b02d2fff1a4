// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"log/slog"
	"os"
)

// stderr receives progress logs; tests swap it.
var stderr io.Writer = os.Stderr

// newLogger returns a text logger on w. Verbosity 0 shows warnings and
// errors only; any -v enables Info progress messages.
func newLogger(w io.Writer, verbose int) *slog.Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	if verbose > 0 {
		level.Set(slog.LevelInfo)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
