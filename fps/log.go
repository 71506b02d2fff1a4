// SPDX-License-Identifier: MIT

package fps

import (
	"context"
	"log/slog"
)

// Verbosity thresholds.
const (
	verboseStages = 1
	verbosePicks  = 2
)

// logAt emits msg at Info level when the configured verbosity reaches level.
func (c *config) logAt(ctx context.Context, level int, msg string, args ...any) {
	if c.verbose < level {
		return
	}
	c.logger.Log(ctx, slog.LevelInfo, msg, args...)
}

// report invokes the progress callback, if any.
func (c *config) report(p Progress) {
	if c.progress != nil {
		c.progress(p)
	}
}
