// SPDX-License-Identifier: MIT
// Package: lvsample/builder
//
// api.go - the public entry-point.
//
// Design contract:
//   - One orchestrator: BuildPopulation(opts, cons...). Resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical rows.

package builder

import "fmt"

// Population is the accumulating point set handed to constructors.
// Dim is 0 until the first constructor appends rows.
type Population struct {
	Dim  int
	Rows [][]float64
}

// add appends rows of dimension dim, enforcing one dimension per population.
func (p *Population) add(method string, dim int, rows [][]float64) error {
	if p.Dim != 0 && p.Dim != dim {
		return builderErrorf(method, ErrDimensionMismatch, "dim=%d, population dim=%d", dim, p.Dim)
	}
	p.Dim = dim
	p.Rows = append(p.Rows, rows...)

	return nil
}

// Constructor appends a deterministic block of rows using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(p *Population, cfg builderConfig) error

// BuildPopulation resolves opts and applies all constructors in order,
// returning the concatenated rows.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or an empty result.
//   - Constructor errors wrapped as "BuildPopulation: %w".
func BuildPopulation(opts []BuilderOption, cons ...Constructor) ([][]float64, error) {
	cfg := newBuilderConfig(opts...)
	var p Population
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildPopulation: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&p, cfg); err != nil {
			return nil, fmt.Errorf("BuildPopulation: %w", err)
		}
	}
	if len(p.Rows) == 0 {
		return nil, fmt.Errorf("BuildPopulation: no rows: %w", ErrConstructFailed)
	}

	return p.Rows, nil
}
