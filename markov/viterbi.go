package markov

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ViterbiResult holds the most likely hidden-state path for one
// observation sequence.
type ViterbiResult struct {
	// Path is the decoded state sequence, one state per observation.
	Path []int

	// LogProb is the log-probability of the best path, −Inf when no
	// path has positive probability.
	LogProb float64

	// StepLogProbs is the running log-probability along the chosen
	// path: delta[t][Path[t]] for each time step.
	StepLogProbs []float64
}

// Viterbi decodes the single most probable hidden-state path for the
// observation sequence.
//
// The delta trellis accumulates max-over-predecessors log-probability;
// psi records the maximizing predecessor for backtracking. Symbols
// outside [0, NumSymbols) force −Inf, as does an unreachable state,
// and both propagate without ever becoming NaN. The empty sequence
// decodes to an empty path with −Inf probability.
//
// Time: O(T·numStates²). Memory: O(T·numStates).
func (m *Model) Viterbi(obs []int) ViterbiResult {
	T := len(obs)
	if T == 0 {
		return ViterbiResult{LogProb: math.Inf(-1)}
	}

	delta := make([][]float64, T)
	psi := make([][]int, T)
	for t := range delta {
		delta[t] = make([]float64, m.numStates)
		psi[t] = make([]int, m.numStates)
	}

	// Initialization: start mass times first emission.
	for i := 0; i < m.numStates; i++ {
		delta[0][i] = math.Log(m.initial[i]) + m.logEmission(i, obs[0])
	}

	// Recursion: best predecessor per target state, then emission.
	for t := 1; t < T; t++ {
		for j := 0; j < m.numStates; j++ {
			bestVal := math.Inf(-1)
			bestSrc := 0
			for i := 0; i < m.numStates; i++ {
				v := delta[t-1][i] + math.Log(m.transition[i][j])
				if v > bestVal {
					bestVal = v
					bestSrc = i
				}
			}
			delta[t][j] = bestVal + m.logEmission(j, obs[t])
			psi[t][j] = bestSrc
		}
	}

	// Termination and backtracking.
	path := make([]int, T)
	path[T-1] = floats.MaxIdx(delta[T-1])
	for t := T - 2; t >= 0; t-- {
		path[t] = psi[t+1][path[t+1]]
	}

	stepLogProbs := make([]float64, T)
	for t := 0; t < T; t++ {
		stepLogProbs[t] = delta[t][path[t]]
	}

	return ViterbiResult{
		Path:         path,
		LogProb:      delta[T-1][path[T-1]],
		StepLogProbs: stepLogProbs,
	}
}
