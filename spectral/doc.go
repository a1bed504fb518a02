// Package spectral provides the frequency-domain primitives shared by
// the higher-level feature extractors: window tables, the discrete
// Fourier transform and magnitude spectra.
//
// 🚀 What does spectral do?
//
//	Three small, deterministic building blocks:
//	  • Window — Hamming or Hann weighting tables of any length
//	  • Transform — the DFT of a real signal, any length, full spectrum
//	  • MagnitudeSpectrum — |X[k]| over the first half of the spectrum
//
// The transform contract is the textbook DFT definition
//
//	X[k] = Σ_j signal[j]·e^(−2πi·k·j/n),  k,j ∈ [0, n)
//
// realized through gonum's FFTPACK-derived fourier.CmplxFFT, which is
// numerically equivalent for every input length, power of two or not.
//
// All functions are pure: no state survives a call, and concurrent use
// needs no synchronization.
//
// Complexity: Window and MagnitudeSpectrum are O(n); Transform is
// O(n·log n) for smooth lengths and never worse than O(n²).
package spectral
