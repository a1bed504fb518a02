package flat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/resound/align"
	"github.com/katalvlaran/resound/feature"
	"github.com/katalvlaran/resound/markov"
)

// ExtractFeatures frames the audio buffer with a hop of frameSize/2
// (floored, minimum 1) and returns the canonical feature vectors
// flattened row-major, plus the per-frame width NumCoeffs+4.
func ExtractFeatures(samples []float64, sampleRate float64, frameSize int) ([]float64, int, error) {
	hop := frameSize / 2
	if hop < 1 {
		hop = 1
	}
	cfg := feature.Config{
		SampleRate: sampleRate,
		FrameSize:  frameSize,
		HopSize:    hop,
		NumCoeffs:  feature.DefaultNumCoeffs,
		NumFilters: feature.DefaultNumFilters,
	}

	vectors, err := feature.Extract(samples, cfg)
	if err != nil {
		return nil, 0, err
	}

	width := feature.Width(cfg.NumCoeffs)
	out := make([]float64, 0, len(vectors)*width)
	for _, v := range vectors {
		out = append(out, v...)
	}

	return out, width, nil
}

// ExtractCepstral computes nCoeffs mel-frequency cepstral coefficients
// for a single frame.
func ExtractCepstral(frame []float64, sampleRate float64, nCoeffs int) []float64 {
	return feature.Cepstral(frame, sampleRate, nCoeffs)
}

// AlignDistance computes the DTW distance between two flattened vector
// sequences of the declared per-vector dimensions. Mismatched or
// unusable dimensions yield +Inf, matching the core's value-domain
// failure channel.
func AlignDistance(seq1 []float64, dim1 int, seq2 []float64, dim2 int) float64 {
	if dim1 != dim2 {
		return math.Inf(1)
	}
	a, b := unflatten(seq1, dim1), unflatten(seq2, dim2)
	if a == nil || b == nil {
		return math.Inf(1)
	}

	return align.Align(a, b, align.Euclidean).Distance
}

// AlignNormalizedDistance is AlignDistance divided by warp-path
// length, under the same dimension contract.
func AlignNormalizedDistance(seq1 []float64, dim1 int, seq2 []float64, dim2 int) float64 {
	if dim1 != dim2 {
		return math.Inf(1)
	}
	a, b := unflatten(seq1, dim1), unflatten(seq2, dim2)
	if a == nil || b == nil {
		return math.Inf(1)
	}

	return align.NormalizedDistance(a, b)
}

// Decode runs Viterbi over row-major model parameters and returns the
// most likely state path, one state per observation.
func Decode(obs []int, transition, emission, initial []float64, numStates, vocabSize int) ([]int, error) {
	m, err := buildModel(transition, emission, initial, numStates, vocabSize)
	if err != nil {
		return nil, err
	}

	return m.Viterbi(obs).Path, nil
}

// SequenceLikelihood runs the forward algorithm over row-major model
// parameters and returns the total sequence log-likelihood.
func SequenceLikelihood(obs []int, transition, emission, initial []float64, numStates, vocabSize int) (float64, error) {
	m, err := buildModel(transition, emission, initial, numStates, vocabSize)
	if err != nil {
		return 0, err
	}

	return m.Likelihood(obs), nil
}

// unflatten reshapes a row-major buffer into dim-wide vectors, or nil
// when the length does not factor.
func unflatten(flat []float64, dim int) [][]float64 {
	if dim <= 0 || len(flat)%dim != 0 {
		return nil
	}
	seq := make([][]float64, len(flat)/dim)
	for i := range seq {
		seq[i] = flat[i*dim : (i+1)*dim]
	}

	return seq
}

// buildModel reshapes row-major parameters into a markov.Model,
// checking that the flat lengths factor into the declared shape.
func buildModel(transition, emission, initial []float64, numStates, vocabSize int) (*markov.Model, error) {
	if numStates <= 0 {
		return nil, markov.ErrNoStates
	}
	if vocabSize < 0 {
		return nil, fmt.Errorf("flat: negative vocabulary size %d: %w", vocabSize, markov.ErrShape)
	}
	if len(transition) != numStates*numStates {
		return nil, fmt.Errorf("flat: %d transition entries for %d states: %w",
			len(transition), numStates, markov.ErrShape)
	}
	if len(emission) != numStates*vocabSize {
		return nil, fmt.Errorf("flat: %d emission entries for %d states × %d symbols: %w",
			len(emission), numStates, vocabSize, markov.ErrShape)
	}
	if len(initial) != numStates {
		return nil, fmt.Errorf("flat: %d initial entries for %d states: %w",
			len(initial), numStates, markov.ErrShape)
	}

	trans := make([][]float64, numStates)
	emiss := make([][]float64, numStates)
	for i := 0; i < numStates; i++ {
		trans[i] = transition[i*numStates : (i+1)*numStates]
		emiss[i] = emission[i*vocabSize : (i+1)*vocabSize]
	}

	return markov.NewModel(trans, emiss, initial)
}
