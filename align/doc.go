// Package align computes Dynamic Time Warping (DTW) distances and
// optimal warp paths between sequences of equal-dimension feature
// vectors, with an optional Sakoe–Chiba band.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance.  It's widely used in:
//	  • Template-based speech and audio recognition
//	  • Gesture / motion matching
//	  • Signature & handwriting verification
//	  • Time-series clustering & anomaly detection
//
// ✨ Key features:
//   - vector sequences: elements are []float64 of any shared dimension
//   - Euclidean or Manhattan local metric (Dist)
//   - exact full-lattice alignment with path backtracking (Align)
//   - Sakoe–Chiba banded variant bounding cost to O(n·window) (AlignBanded)
//   - path-length normalized distance (NormalizedDistance)
//
// Failure is expressed in the numeric domain, not as errors: a
// dimension mismatch or an empty sequence yields a +Inf distance with
// no path, and +Inf propagates through the lattice untouched.
//
// Tie-breaking during backtracking follows a fixed priority — diagonal,
// then horizontal (insertion), then vertical (deletion) — so equal-cost
// alignments always reconstruct the same path.
//
// Performance:
//
//   - Time:   O(n·m) full, O(n·window) banded
//   - Memory: O(n·m) (cost and step matrices)
package align
