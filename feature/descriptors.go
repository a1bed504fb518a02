package feature

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/resound/spectral"
)

// Energy returns the root-mean-square amplitude of a frame:
// sqrt(mean(sample²)). The empty frame has zero energy.
func Energy(frame []float64) float64 {
	if len(frame) == 0 {
		return 0
	}

	return math.Sqrt(floats.Dot(frame, frame) / float64(len(frame)))
}

// ZeroCrossingRate returns the fraction of adjacent-sample pairs whose
// sign differs, with 0 treated as non-negative. The denominator is the
// frame length. Empty frames rate 0.
func ZeroCrossingRate(frame []float64) float64 {
	if len(frame) == 0 {
		return 0
	}
	crossings := 0
	for i := 1; i < len(frame); i++ {
		if (frame[i] >= 0) != (frame[i-1] >= 0) {
			crossings++
		}
	}

	return float64(crossings) / float64(len(frame))
}

// SpectralCentroid returns the magnitude-weighted mean frequency of a
// frame, in Hz:
//
//	centroid = Σ freq_i·mag_i / Σ mag_i,  freq_i = i·sampleRate/(2·len(mag))
//
// A frame with zero total magnitude (silence) has centroid 0.
func SpectralCentroid(frame []float64, sampleRate float64) float64 {
	mag := spectral.MagnitudeSpectrum(spectral.Transform(frame))
	total := floats.Sum(mag)
	if !(total > 0) {
		return 0
	}

	var weighted float64
	for i, m := range mag {
		freq := float64(i) * sampleRate / (2.0 * float64(len(mag)))
		weighted += freq * m
	}

	return weighted / total
}

// EstimatePitch estimates the fundamental frequency of a frame by
// autocorrelation peak picking over the 80–800 Hz lag range:
//
//	ac[lag] = Σ_i frame[i]·frame[i+lag]
//
// It returns sampleRate/bestLag, or 0 when no strictly positive
// correlation peak exists in range.
func EstimatePitch(frame []float64, sampleRate float64) float64 {
	n := len(frame)
	if n == 0 || sampleRate <= 0 {
		return 0
	}

	minLag := int(sampleRate / 800.0) // shortest period: 800 Hz ceiling
	maxLag := int(sampleRate / 80.0)  // longest period: 80 Hz floor

	bestLag := 0
	bestCorr := 0.0
	for lag := minLag; lag <= maxLag && lag < n; lag++ {
		corr := floats.Dot(frame[:n-lag], frame[lag:])
		if corr > bestCorr {
			bestCorr = corr
			bestLag = lag
		}
	}
	if bestLag == 0 {
		return 0
	}

	return sampleRate / float64(bestLag)
}
