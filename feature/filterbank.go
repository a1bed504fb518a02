package feature

import "gonum.org/v1/gonum/floats"

// FilterBank is a set of triangular weighting functions over spectrum
// bins, mel-equispaced between 0 Hz and Nyquist. Build it once per
// (nFilters, transformSize, sampleRate) triple; it is read-only after
// construction and safe to share across goroutines.
type FilterBank struct {
	weights       [][]float64 // [nFilters][transformSize/2]
	transformSize int
	sampleRate    float64
}

// NewFilterBank constructs the bank: nFilters+2 points equally spaced
// in mel space from 0 Hz to Nyquist, converted to Hz and floored to bin
// indices (hz·transformSize/sampleRate). Filter i ramps linearly 0→1
// from its left bin to its center bin, then 1→0 from center to its
// right bin; bins at or beyond transformSize/2 are clipped.
func NewFilterBank(nFilters, transformSize int, sampleRate float64) *FilterBank {
	fb := &FilterBank{
		transformSize: transformSize,
		sampleRate:    sampleRate,
	}
	if nFilters <= 0 || transformSize <= 0 || sampleRate <= 0 {
		return fb
	}

	nyquist := sampleRate / 2.0
	melMin := MelFromHz(0)
	melMax := MelFromHz(nyquist)

	// nFilters+2 boundary points: left edge, nFilters centers, right edge.
	bins := make([]int, nFilters+2)
	for i := range bins {
		mel := melMin + (melMax-melMin)*float64(i)/float64(nFilters+1)
		bins[i] = int(HzFromMel(mel) * float64(transformSize) / sampleRate)
	}

	half := transformSize / 2
	fb.weights = make([][]float64, nFilters)
	for i := 1; i <= nFilters; i++ {
		row := make([]float64, half)

		// Rising edge: bins[i-1] → bins[i]. An empty range (coincident
		// points) skips the slope entirely, so no division by zero.
		for j := bins[i-1]; j < bins[i]; j++ {
			if j < half {
				row[j] = float64(j-bins[i-1]) / float64(bins[i]-bins[i-1])
			}
		}
		// Falling edge: bins[i] → bins[i+1].
		for j := bins[i]; j < bins[i+1]; j++ {
			if j < half {
				row[j] = float64(bins[i+1]-j) / float64(bins[i+1]-bins[i])
			}
		}
		fb.weights[i-1] = row
	}

	return fb
}

// NumFilters reports how many triangular filters the bank holds.
func (fb *FilterBank) NumFilters() int { return len(fb.weights) }

// Weights returns a copy of filter i's per-bin weights, or nil when i
// is out of range.
func (fb *FilterBank) Weights(i int) []float64 {
	if i < 0 || i >= len(fb.weights) {
		return nil
	}
	out := make([]float64, len(fb.weights[i]))
	copy(out, fb.weights[i])

	return out
}

// Apply folds a magnitude spectrum through the bank, returning one
// energy per filter: energy_i = Σ_bin spectrum[bin]·filter_i[bin].
// Bins beyond either operand's length contribute nothing.
func (fb *FilterBank) Apply(spectrum []float64) []float64 {
	energies := make([]float64, len(fb.weights))
	for i, row := range fb.weights {
		n := len(row)
		if len(spectrum) < n {
			n = len(spectrum)
		}
		energies[i] = floats.Dot(row[:n], spectrum[:n])
	}

	return energies
}
