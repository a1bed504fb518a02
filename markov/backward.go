package markov

import "math"

// Backward computes the beta lattice: beta[t][i] is the log-probability
// of the observation suffix obs[t+1:] given state i at time t. The
// final row is log(1) = 0 for every state; no scalar reduction is
// defined at this layer — callers combine beta with Forward's alpha.
// The empty sequence yields a nil lattice.
//
// Time: O(T·numStates²). Memory: O(T·numStates).
func (m *Model) Backward(obs []int) [][]float64 {
	T := len(obs)
	if T == 0 {
		return nil
	}

	beta := make([][]float64, T)
	for t := range beta {
		beta[t] = make([]float64, m.numStates)
	}
	// beta[T-1] is all zeros already: log(1).

	for t := T - 2; t >= 0; t-- {
		for i := 0; i < m.numStates; i++ {
			sum := math.Inf(-1)
			for j := 0; j < m.numStates; j++ {
				sum = logSum(sum, math.Log(m.transition[i][j])+
					m.logEmission(j, obs[t+1])+beta[t+1][j])
			}
			beta[t][i] = sum
		}
	}

	return beta
}

// Posterior combines the forward and backward lattices into per-step
// state posteriors: gamma[t][i] = alpha[t][i] + beta[t][i] − logLik,
// still in the log domain. A zero-likelihood sequence yields an
// all-−Inf lattice rather than NaN; the empty sequence yields nil.
//
// Time: O(T·numStates²). Memory: O(T·numStates).
func (m *Model) Posterior(obs []int) [][]float64 {
	T := len(obs)
	if T == 0 {
		return nil
	}

	fwd := m.Forward(obs)
	beta := m.Backward(obs)

	gamma := make([][]float64, T)
	for t := range gamma {
		gamma[t] = make([]float64, m.numStates)
		for i := range gamma[t] {
			if math.IsInf(fwd.LogLikelihood, -1) {
				gamma[t][i] = math.Inf(-1)
				continue
			}
			gamma[t][i] = fwd.Alpha[t][i] + beta[t][i] - fwd.LogLikelihood
		}
	}

	return gamma
}
