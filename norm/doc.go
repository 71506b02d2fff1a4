// Package norm describes the vector norms used to measure distances between
// population points.
//
// A Norm is either a finite order p ≥ 1 (Minkowski / p-norm) or the infinity
// norm (maximum absolute component). The same Norm value must be threaded
// through every distance computation of a sampling run so that the initial
// selection and the pairwise distance matrix share one geometry.
//
// ⚙️ Usage:
//
//	n, err := norm.Parse("inf")
//	d := n.Distance([]float64{0, 0}, []float64{3, -4}) // 4
//
// Performance:
//
//   - Distance: O(D); p ∈ {1, 2, ∞} avoid math.Pow entirely.
package norm
