// SPDX-License-Identifier: MIT

package norm

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidNorm indicates an order that is neither a positive integer nor infinity.
var ErrInvalidNorm = errors.New("norm: order must be a positive integer or infinity")

// Norm is a vector norm of order p. The zero value is invalid; use L1, L2,
// Inf, P or Parse.
type Norm struct {
	p float64 // 1, 2, ... or +Inf; 0 marks the invalid zero value
}

var (
	// L1 is the Manhattan norm.
	L1 = Norm{p: 1}
	// L2 is the Euclidean norm.
	L2 = Norm{p: 2}
	// Inf is the maximum (Chebyshev) norm.
	Inf = Norm{p: math.Inf(1)}
)

// infNames are the accepted spellings of the infinity norm in Parse.
var infNames = []string{"inf", "infinity", "max", "chebyshev"}

// P returns the p-norm for a positive integer p.
func P(p int) (Norm, error) {
	if p < 1 {
		return Norm{}, fmt.Errorf("P(%d): %w", p, ErrInvalidNorm)
	}

	return Norm{p: float64(p)}, nil
}

// MustP is like P but panics on an invalid order. Intended for constants in
// tests and option literals.
func MustP(p int) Norm {
	n, err := P(p)
	if err != nil {
		panic(err)
	}

	return n
}

// Parse reads a norm from text: a positive integer ("1", "2", "3", ...) or one
// of "inf", "infinity", "max", "chebyshev" (case-insensitive).
func Parse(s string) (Norm, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for _, name := range infNames {
		if t == name {
			return Inf, nil
		}
	}
	p, err := strconv.Atoi(t)
	if err != nil {
		return Norm{}, fmt.Errorf("Parse(%q): %w", s, ErrInvalidNorm)
	}

	return P(p)
}

// Valid reports whether n is a usable norm (not the zero value).
func (n Norm) Valid() bool { return n.p >= 1 }

// IsInf reports whether n is the infinity norm.
func (n Norm) IsInf() bool { return math.IsInf(n.p, 1) }

// Order returns p, or +Inf for the infinity norm.
func (n Norm) Order() float64 { return n.p }

// String renders the norm the way Parse accepts it.
func (n Norm) String() string {
	switch {
	case n.IsInf():
		return "inf"
	case !n.Valid():
		return "invalid"
	default:
		return strconv.Itoa(int(n.p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (n Norm) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, ErrInvalidNorm
	}

	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so a Norm can be used
// directly as a CLI flag or config field.
func (n *Norm) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*n = v

	return nil
}

// Distance returns ||a - b|| under n. The caller guarantees len(a) == len(b);
// extra components of the longer slice are ignored.
//
// Complexity: O(len(a)).
func (n Norm) Distance(a, b []float64) float64 {
	if len(b) < len(a) {
		a = a[:len(b)]
	}
	b = b[:len(a)]

	var acc float64
	switch {
	case n.IsInf():
		for i := range a {
			if d := math.Abs(a[i] - b[i]); d > acc {
				acc = d
			}
		}
		return acc
	case n.p == 1:
		for i := range a {
			acc += math.Abs(a[i] - b[i])
		}
		return acc
	case n.p == 2:
		for i := range a {
			d := a[i] - b[i]
			acc += d * d
		}
		return math.Sqrt(acc)
	default:
		for i := range a {
			acc += math.Pow(math.Abs(a[i]-b[i]), n.p)
		}
		return math.Pow(acc, 1/n.p)
	}
}
