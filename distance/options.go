// SPDX-License-Identifier: MIT

package distance

import "runtime"

// DefaultWorkers is the worker count used when WithWorkers is not supplied;
// 0 means runtime.GOMAXPROCS(0) at call time.
const DefaultWorkers = 0

const panicWorkersInvalid = "distance: WithWorkers: workers must be >= 1"

// Option customizes Pairwise. Option constructors panic on nonsensical values
// (programmer error); Pairwise itself only returns sentinel errors.
type Option func(*config)

type config struct {
	workers int // 0 ⇒ GOMAXPROCS
}

// WithWorkers bounds the number of goroutines computing rows.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}

	return func(c *config) { c.workers = k }
}

// gatherOptions resolves opts over the documented defaults.
func gatherOptions(opts ...Option) config {
	cfg := config{workers: DefaultWorkers}
	for _, fn := range opts {
		if fn != nil {
			fn(&cfg)
		}
	}
	if cfg.workers == 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}

	return cfg
}
