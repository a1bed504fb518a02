package markov_test

import (
	"testing"

	"github.com/katalvlaran/resound/markov"
)

// benchModel builds a dense numStates×numSymbols model with uniform
// rows, and a deterministic observation stream of length T.
func benchModel(b *testing.B, numStates, numSymbols, T int) (*markov.Model, []int) {
	b.Helper()

	trans := make([][]float64, numStates)
	emiss := make([][]float64, numStates)
	initial := make([]float64, numStates)
	for i := range trans {
		trans[i] = make([]float64, numStates)
		emiss[i] = make([]float64, numSymbols)
		for j := range trans[i] {
			trans[i][j] = 1 / float64(numStates)
		}
		for o := range emiss[i] {
			emiss[i][o] = 1 / float64(numSymbols)
		}
		initial[i] = 1 / float64(numStates)
	}
	m, err := markov.NewModel(trans, emiss, initial)
	if err != nil {
		b.Fatalf("NewModel failed: %v", err)
	}

	obs := make([]int, T)
	for t := range obs {
		obs[t] = (t * 7) % numSymbols
	}

	return m, obs
}

// BenchmarkViterbi_Small benchmarks decoding 100 observations over 8
// states.
func BenchmarkViterbi_Small(b *testing.B) {
	m, obs := benchModel(b, 8, 16, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Viterbi(obs)
	}
}

// BenchmarkViterbi_Medium benchmarks decoding 1000 observations over
// 32 states.
func BenchmarkViterbi_Medium(b *testing.B) {
	m, obs := benchModel(b, 32, 64, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Viterbi(obs)
	}
}

// BenchmarkForward_Medium benchmarks the sum-over-paths lattice on the
// same medium workload.
func BenchmarkForward_Medium(b *testing.B) {
	m, obs := benchModel(b, 32, 64, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Forward(obs)
	}
}

// BenchmarkBackward_Medium benchmarks the beta lattice on the same
// medium workload.
func BenchmarkBackward_Medium(b *testing.B) {
	m, obs := benchModel(b, 32, 64, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Backward(obs)
	}
}
