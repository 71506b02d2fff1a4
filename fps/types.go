// SPDX-License-Identifier: MIT

package fps

import "fmt"

// InitMode selects how the initial selected set is resolved.
type InitMode int

const (
	// InitAuto selects the population point closest to the centroid.
	InitAuto InitMode = iota
	// InitIndex takes caller-supplied population indices.
	InitIndex
	// InitPoints takes caller-supplied coordinates and matches them back to
	// population indices.
	InitPoints
)

func (m InitMode) String() string {
	switch m {
	case InitAuto:
		return "auto"
	case InitIndex:
		return "index"
	case InitPoints:
		return "points"
	default:
		return fmt.Sprintf("InitMode(%d)", int(m))
	}
}

// State is the lifecycle stage of a run, reported through WithProgress.
type State int

const (
	// StateInitialized: initial set resolved, distance matrix built, nothing picked yet.
	StateInitialized State = iota
	// StateSelecting: one pick has just been made.
	StateSelecting
	// StateDone: all picks made; the Result is complete.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateSelecting:
		return "selecting"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Progress is delivered to the WithProgress callback.
// Index and MinDistance are meaningful only for StateSelecting.
type Progress struct {
	State       State
	Step        int // picks made so far
	Total       int // requested picks
	Index       int
	MinDistance float64
}

// Result is the outcome of one FPS run.
type Result struct {
	// Indices holds the newly selected population indices in selection order
	// (the initial set is not included). len(Indices) == size.
	Indices []int

	// Points holds a copy of the population row for each entry of Indices.
	Points [][]float64

	// Initial is the resolved initial set, ascending, without duplicates.
	Initial []int

	// MinDistances[k] is the distance from Indices[k] to its nearest
	// previously selected point at the moment it was picked (+Inf for the
	// very first pick of a run with an empty initial set). The sequence is
	// non-increasing.
	MinDistances []float64
}

// Column lifts a 1-D sequence into an N×1 population.
func Column(xs []float64) [][]float64 {
	out := make([][]float64, len(xs))
	for i, x := range xs {
		out[i] = []float64{x}
	}

	return out
}
