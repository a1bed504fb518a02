// Package resound is an in-memory computational core for audio pattern
// recognition — spectral feature extraction, time-series alignment and
// probabilistic sequence decoding, with no I/O and no hidden state.
//
// 🚀 What is resound?
//
//	A small, pure-computation library that brings together:
//		• Spectral primitives: Hamming/Hann windows, DFT, magnitude spectra
//		• Feature extraction: MFCC, energy, zero-crossing rate, centroid, pitch
//		• Sequence alignment: Dynamic Time Warping over feature-vector streams
//		• Probabilistic decoding: log-domain Viterbi, forward & backward
//
// ✨ Why choose resound?
//
//   - Value-in, value-out – every call allocates its own lattices and
//     returns them; nothing persists between calls
//   - Concurrency-safe by construction – models are read-only during
//     decoding, so one model serves many goroutines
//   - Sentinels over exceptions – impossible distances are +Inf,
//     zero-probability likelihoods are −Inf, and both propagate cleanly
//   - Pure Go on gonum – no cgo, no services, no configuration files
//
// The module is organized as one package per engine:
//
//	spectral/ — windowing, discrete Fourier transform, magnitude spectrum
//	feature/  — mel filter banks, cepstral coefficients, frame descriptors
//	align/    — DTW distance, warp paths, Sakoe–Chiba banding
//	markov/   — hidden Markov model inference in the log domain
//	flat/     — flat-array entry points for host-language integration
//
// A typical pipeline extracts feature vectors with feature.Extract,
// then either aligns two utterances with align.Align or quantizes the
// vectors into discrete symbols and decodes them with markov.Viterbi.
// No package calls another above it; composition happens in the caller.
//
//	go get github.com/katalvlaran/resound
package resound
