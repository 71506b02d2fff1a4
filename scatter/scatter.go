// SPDX-License-Identifier: MIT

// Package scatter reduces values into buckets addressed by a per-element
// group index ("scatter reduce").
//
// For src = [1 2 3 4] and index = [0 1 0 1], Reduce(src, index, Sum) yields
// [4 6]. The output length is max(index)+1; a bucket that receives no
// element is 0 for every op.
//
// Determinism:
//   - Elements are folded in ascending position order, so floating-point
//     results are reproducible bit for bit.
package scatter

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Op is a reduction operator.
type Op int

const (
	// Sum adds the elements of each bucket.
	Sum Op = iota
	// Prod multiplies the elements of each bucket.
	Prod
	// Mean averages the elements of each bucket.
	Mean
	// Amin keeps the minimum of each bucket.
	Amin
	// Amax keeps the maximum of each bucket.
	Amax
)

var (
	// ErrLengthMismatch indicates len(src) != len(index).
	ErrLengthMismatch = errors.New("scatter: src and index lengths differ")
	// ErrNegativeIndex indicates a negative group index.
	ErrNegativeIndex = errors.New("scatter: negative group index")
	// ErrUnknownOp indicates an Op outside Sum..Amax.
	ErrUnknownOp = errors.New("scatter: unknown reduce op")
)

var opNames = [...]string{"sum", "prod", "mean", "amin", "amax"}

func (o Op) String() string {
	if o < Sum || o > Amax {
		return fmt.Sprintf("Op(%d)", int(o))
	}

	return opNames[o]
}

// ParseOp maps "sum", "prod", "mean", "amin", "amax" to an Op.
func ParseOp(s string) (Op, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for i, name := range opNames {
		if t == name {
			return Op(i), nil
		}
	}

	return 0, fmt.Errorf("ParseOp(%q): %w", s, ErrUnknownOp)
}

// Reduce folds src into max(index)+1 buckets with op.
//
// Errors:
//   - ErrLengthMismatch, ErrNegativeIndex, ErrUnknownOp.
//
// Complexity: O(len(src)) time, O(max(index)) space.
func Reduce(src []float64, index []int, op Op) ([]float64, error) {
	if len(src) != len(index) {
		return nil, fmt.Errorf("Reduce: len(src)=%d len(index)=%d: %w", len(src), len(index), ErrLengthMismatch)
	}
	if op < Sum || op > Amax {
		return nil, fmt.Errorf("Reduce: %s: %w", op, ErrUnknownOp)
	}
	buckets := 0
	for k, g := range index {
		if g < 0 {
			return nil, fmt.Errorf("Reduce: index[%d]=%d: %w", k, g, ErrNegativeIndex)
		}
		if g+1 > buckets {
			buckets = g + 1
		}
	}

	out := make([]float64, buckets)
	count := make([]int, buckets)
	for k, v := range src {
		g := index[k]
		if count[g] == 0 {
			out[g] = v
			count[g] = 1
			continue
		}
		count[g]++
		switch op {
		case Sum, Mean:
			out[g] += v
		case Prod:
			out[g] *= v
		case Amin:
			out[g] = math.Min(out[g], v)
		case Amax:
			out[g] = math.Max(out[g], v)
		}
	}
	if op == Mean {
		for g := range out {
			if count[g] > 0 {
				out[g] /= float64(count[g])
			}
		}
	}

	return out, nil
}
