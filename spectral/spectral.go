package spectral

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// WindowKind selects the weighting table produced by Window.
type WindowKind int

const (
	// Hamming window: w[i] = 0.54 − 0.46·cos(2π·i/(size−1)).
	Hamming WindowKind = iota

	// Hann window: w[i] = 0.5·(1 − cos(2π·i/(size−1))).
	Hann
)

// Window returns a real-valued weighting table of the given size.
//
// Size 1 is degenerate (the cosine term divides by size−1); the table
// collapses to a single unit weight so that single-sample frames pass
// through unattenuated. Non-positive sizes yield nil.
func Window(kind WindowKind, size int) []float64 {
	if size <= 0 {
		return nil
	}
	w := make([]float64, size)
	if size == 1 {
		w[0] = 1
		return w
	}
	for i := 0; i < size; i++ {
		phase := 2 * math.Pi * float64(i) / float64(size-1)
		switch kind {
		case Hann:
			w[i] = 0.5 * (1 - math.Cos(phase))
		default:
			w[i] = 0.54 - 0.46*math.Cos(phase)
		}
	}

	return w
}

// Apply multiplies signal by window elementwise and returns the product
// as a fresh slice. The shorter of the two lengths bounds the output.
func Apply(window, signal []float64) []float64 {
	n := len(signal)
	if len(window) < n {
		n = len(window)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = window[i] * signal[i]
	}

	return out
}

// Transform computes the discrete Fourier transform of a real signal,
// returning the full complex spectrum of the same length:
//
//	X[k] = Σ_j signal[j]·e^(−2πi·k·j/n)
//
// Any length is accepted; the empty signal transforms to nil.
func Transform(signal []float64) []complex128 {
	n := len(signal)
	if n == 0 {
		return nil
	}
	seq := make([]complex128, n)
	for i, s := range signal {
		seq[i] = complex(s, 0)
	}

	return fourier.NewCmplxFFT(n).Coefficients(nil, seq)
}

// MagnitudeSpectrum returns |X[k]| for k in [0, n/2) — the first half
// of the spectrum, sufficient for real-valued signals by conjugate
// symmetry.
func MagnitudeSpectrum(coeffs []complex128) []float64 {
	mag := make([]float64, len(coeffs)/2)
	for i := range mag {
		mag[i] = cmplx.Abs(coeffs[i])
	}

	return mag
}
