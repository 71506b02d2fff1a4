// SPDX-License-Identifier: MIT

package sampling

import "fmt"

// Selection is a set of chosen population indices and their rows.
type Selection struct {
	Indices []int
	Points  [][]float64
}

// Random draws size distinct indices uniformly from [0, n) in draw order.
//
// Errors:
//   - ErrInvalidSize when size < 1 or size > n.
func Random(n, size int, seed int64) ([]int, error) {
	if size < 1 || size > n {
		return nil, fmt.Errorf("Random: size=%d n=%d: %w", size, n, ErrInvalidSize)
	}

	return chooseWithoutReplacement(n, size, rngFromSeed(seed)), nil
}

// RandomPoints is Random over a population, also returning copies of the rows.
func RandomPoints(population [][]float64, size int, seed int64) (*Selection, error) {
	idx, err := Random(len(population), size, seed)
	if err != nil {
		return nil, err
	}
	sel := &Selection{Indices: idx, Points: make([][]float64, len(idx))}
	for k, i := range idx {
		sel.Points[k] = append([]float64(nil), population[i]...)
	}

	return sel, nil
}
