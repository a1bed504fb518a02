package markov

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ForwardResult holds the sum-over-paths likelihood and its lattice.
type ForwardResult struct {
	// LogLikelihood is log P(obs | model), −Inf for the empty or
	// impossible sequence.
	LogLikelihood float64

	// Alpha is the T×numStates forward lattice of log-probabilities.
	Alpha [][]float64
}

// Forward computes the total sequence log-likelihood by summing over
// all state paths with stabilized log-sum-exp. The empty sequence
// yields −Inf and a nil lattice.
//
// Time: O(T·numStates²). Memory: O(T·numStates).
func (m *Model) Forward(obs []int) ForwardResult {
	T := len(obs)
	if T == 0 {
		return ForwardResult{LogLikelihood: math.Inf(-1)}
	}

	alpha := make([][]float64, T)
	for t := range alpha {
		alpha[t] = make([]float64, m.numStates)
	}

	for i := 0; i < m.numStates; i++ {
		alpha[0][i] = math.Log(m.initial[i]) + m.logEmission(i, obs[0])
	}

	for t := 1; t < T; t++ {
		for j := 0; j < m.numStates; j++ {
			sum := math.Inf(-1)
			for i := 0; i < m.numStates; i++ {
				sum = logSum(sum, alpha[t-1][i]+math.Log(m.transition[i][j]))
			}
			alpha[t][j] = sum + m.logEmission(j, obs[t])
		}
	}

	return ForwardResult{
		LogLikelihood: floats.LogSumExp(alpha[T-1]),
		Alpha:         alpha,
	}
}

// Likelihood returns Forward's scalar log-likelihood, discarding the
// lattice.
func (m *Model) Likelihood(obs []int) float64 {
	return m.Forward(obs).LogLikelihood
}
