// SPDX-License-Identifier: MIT
// Exports private helpers to the fps_test package.

package fps

import "github.com/katalvlaran/lvsample/matrix"

// ResolveInitial exposes resolveInitial with options resolved as Run does.
func ResolveInitial(population [][]float64, opts ...Option) ([]int, error) {
	pop, err := matrix.FromRows(population)
	if err != nil {
		return nil, err
	}
	cfg := gatherOptions(opts...)

	return resolveInitial(pop, &cfg)
}
