package align

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Dist returns the local distance between two feature vectors under
// the chosen metric, or +Inf when their dimensions differ.
func Dist(a, b []float64, metric Metric) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	if metric == Manhattan {
		return floats.Distance(a, b, 1)
	}

	return floats.Distance(a, b, 2)
}

// Align computes the full dynamic-time-warping alignment between two
// vector sequences.
//
// The (n+1)×(m+1) cost lattice starts at cost[0][0]=0 with +Inf
// borders; each interior cell adds the local distance to the cheapest
// of its diagonal, horizontal and vertical predecessors. Ties resolve
// by fixed priority — diagonal, then horizontal (insertion), then
// vertical (deletion) — which determines the reconstructed path.
//
// Either side empty yields {+Inf, nil}.
//
// Time: O(n·m·dim). Memory: O(n·m).
func Align(seq1, seq2 [][]float64, metric Metric) Result {
	return warp(seq1, seq2, metric, -1)
}

// AlignBanded is Align restricted to a Sakoe–Chiba band: row i only
// considers columns j ∈ [max(1, i−window), min(m, i+window)]. Cells
// outside the band stay +Inf and are unreachable. The local metric is
// Euclidean.
//
// A band too narrow to connect (n,m) to (0,0) yields {+Inf, nil}.
//
// Time: O(n·window·dim). Memory: O(n·m).
func AlignBanded(seq1, seq2 [][]float64, window int) Result {
	return warp(seq1, seq2, Euclidean, window)
}

// NormalizedDistance returns the Align distance (Euclidean metric)
// divided by the warp path length; a zero-length path leaves the raw
// distance unmodified.
func NormalizedDistance(seq1, seq2 [][]float64) float64 {
	res := Align(seq1, seq2, Euclidean)
	if len(res.Path) == 0 {
		return res.Distance
	}

	return res.Distance / float64(len(res.Path))
}

// warp fills the cost and step lattices and backtracks. window < 0
// disables banding.
func warp(seq1, seq2 [][]float64, metric Metric, window int) Result {
	n, m := len(seq1), len(seq2)
	inf := math.Inf(1)
	if n == 0 || m == 0 {
		return Result{Distance: inf}
	}

	cost := make([][]float64, n+1)
	steps := make([][]step, n+1)
	for i := range cost {
		cost[i] = make([]float64, m+1)
		steps[i] = make([]step, m+1)
		for j := range cost[i] {
			cost[i][j] = inf
			steps[i][j] = stepNone
		}
	}
	cost[0][0] = 0

	for i := 1; i <= n; i++ {
		jFrom, jTo := 1, m
		if window >= 0 {
			jFrom = max(1, i-window)
			jTo = min(m, i+window)
		}
		for j := jFrom; j <= jTo; j++ {
			local := Dist(seq1[i-1], seq2[j-1], metric)

			diag := cost[i-1][j-1]
			horiz := cost[i][j-1]
			vert := cost[i-1][j]

			best := math.Min(diag, math.Min(horiz, vert))
			cost[i][j] = local + best

			// Fixed tie-break priority: diagonal, then insertion,
			// then deletion. Reproducibility-critical.
			switch {
			case best == diag:
				steps[i][j] = stepDiag
			case best == horiz:
				steps[i][j] = stepHoriz
			default:
				steps[i][j] = stepVert
			}
		}
	}

	distance := cost[n][m]
	if math.IsInf(distance, 1) {
		return Result{Distance: distance}
	}

	return Result{Distance: distance, Path: backtrack(steps, n, m)}
}

// backtrack follows the recorded step at each cell from (n,m) down to
// the origin, then reverses the visited pairs into chronological order.
func backtrack(steps [][]step, n, m int) []Coord {
	var path []Coord
	for i, j := n, m; i > 0 && j > 0; {
		path = append(path, Coord{I: i - 1, J: j - 1})
		switch steps[i][j] {
		case stepDiag:
			i--
			j--
		case stepHoriz:
			j--
		default:
			i--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
