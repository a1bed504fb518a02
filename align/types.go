package align

// Metric selects the local distance between two feature vectors.
type Metric int

const (
	// Euclidean metric: sqrt(Σ(a_i−b_i)²).
	Euclidean Metric = iota

	// Manhattan metric: Σ|a_i−b_i|.
	Manhattan
)

// Coord is one alignment step: element I of the first sequence matched
// against element J of the second, both zero-based.
type Coord struct {
	I, J int
}

// Result holds the outcome of an alignment.
type Result struct {
	// Distance is the accumulated warp cost, +Inf when no alignment
	// exists (empty input, dimension mismatch, band exhaustion).
	Distance float64

	// Path is the optimal warp path in chronological order, from
	// (0,0) to (n−1,m−1). Nil whenever Distance is +Inf.
	Path []Coord
}

// step encodes which predecessor produced a lattice cell's minimum;
// used only for backtracking, never mutated afterward.
type step int8

const (
	stepNone  step = -1 // unreached cell
	stepDiag  step = 0  // match: (i−1, j−1)
	stepHoriz step = 1  // insertion: (i, j−1)
	stepVert  step = 2  // deletion: (i−1, j)
)
