package fps_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsample/fps"
	"github.com/katalvlaran/lvsample/norm"
)

// ExampleSample picks one point beyond the auto-selected centroid neighbour.
func ExampleSample() {
	pop := [][]float64{{0, 0}, {1, 0}, {0, 1}, {10, 10}}

	res, err := fps.Sample(context.Background(), pop, 1, fps.WithNorm(norm.L2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("initial:", res.Initial)
	fmt.Println("picked:", res.Indices, res.Points)

	// Output:
	// initial: [1]
	// picked: [3] [[10 10]]
}

// ExampleNew_indices starts from explicit indices and walks a 1-D line.
func ExampleNew_indices() {
	line := fps.Column([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8})

	s, err := fps.New(3, fps.WithInitIndices(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := s.Run(context.Background(), line)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Indices, res.MinDistances)

	// Output:
	// [8 4 2] [8 4 2]
}

// ExampleSample_capacity shows the eager capacity check.
func ExampleSample_capacity() {
	pop := [][]float64{{0}, {1}, {2}}

	_, err := fps.Sample(context.Background(), pop, 3, fps.WithInitIndices(1))
	fmt.Println(err)

	// Output:
	// Run: |initial|=1 + size=3 > N=3: fps: initial set plus sample size exceeds population
}
