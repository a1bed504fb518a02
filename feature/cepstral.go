package feature

import (
	"math"

	"github.com/katalvlaran/resound/spectral"
)

// Cepstral computes mel-frequency cepstral coefficients for one frame:
// Hamming window → DFT → magnitude spectrum → 26-filter mel bank →
// log(max(energy, 1e-10)) → DCT-II → first nCoeffs coefficients.
//
// The result always has length nCoeffs, zero-padded when nCoeffs
// exceeds the number of filter energies. The bank is rebuilt per call;
// use CepstralWithBank to amortize it over many frames.
func Cepstral(frame []float64, sampleRate float64, nCoeffs int) []float64 {
	fb := NewFilterBank(DefaultNumFilters, len(frame), sampleRate)

	return CepstralWithBank(frame, nCoeffs, fb)
}

// CepstralWithBank is Cepstral against a caller-supplied filter bank,
// which must have been built for transformSize == len(frame).
func CepstralWithBank(frame []float64, nCoeffs int, fb *FilterBank) []float64 {
	if nCoeffs < 0 {
		nCoeffs = 0
	}

	window := spectral.Window(spectral.Hamming, len(frame))
	windowed := spectral.Apply(window, frame)
	mag := spectral.MagnitudeSpectrum(spectral.Transform(windowed))

	energies := fb.Apply(mag)
	logEnergies := make([]float64, len(energies))
	for i, e := range energies {
		logEnergies[i] = math.Log(math.Max(e, energyFloor))
	}

	out := make([]float64, nCoeffs)
	copy(out, dctII(logEnergies))

	return out
}

// dctII applies the type-II discrete cosine transform:
//
//	out[k] = Σ_j in[j]·cos(π·k·(j+0.5)/n)
//
// Unnormalized, matching the cepstral contract.
func dctII(in []float64) []float64 {
	n := len(in)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += in[j] * math.Cos(math.Pi*float64(k)*(float64(j)+0.5)/float64(n))
		}
		out[k] = sum
	}

	return out
}
