// Package feature turns short audio frames into fixed-width numeric
// descriptors and whole buffers into descriptor sequences.
//
// 🚀 What does feature extract?
//
//	Per frame, one canonical vector laid out as:
//	  [cepstral_0 … cepstral_{k−1}, energy, zero-crossing rate,
//	   spectral centroid, pitch]
//	so every vector has width NumCoeffs+4, and vector order equals
//	temporal frame order.
//
// ✨ The pieces:
//   - MelFromHz / HzFromMel — exact-inverse mel-scale conversions
//   - FilterBank — triangular mel-spaced filters over spectrum bins
//   - Cepstral — MFCC via window → DFT → filter bank → log → DCT-II
//   - Energy, ZeroCrossingRate, SpectralCentroid, EstimatePitch —
//     scalar frame descriptors
//   - Extract — framing plus per-frame assembly of the canonical vector
//
// Filter-bank energies are floored at 1e-10 before the logarithm, so a
// silent frame produces finite cepstra rather than −Inf. All other
// degenerate inputs (empty frames, single-sample frames) yield defined
// zero values instead of errors.
//
// Every call allocates and returns its own buffers; a FilterBank built
// once may be shared read-only across goroutines.
//
// Complexity: Cepstral is O(n²) worst case (DFT of arbitrary length)
// and O(n·log n) for smooth frame sizes; the scalar descriptors are
// O(n) except EstimatePitch, which is O(n·lagRange).
package feature
