package markov_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/resound/markov"
)

// TestForward_GoldenTwoState pins the hand-computed likelihood for the
// reference model on obs=[0,1,0].
//
// Probability-space lattice:
//
//	alpha0 = [0.3, 0.04]
//	alpha1 = [(0.21+0.016)·0.5, (0.09+0.024)·0.9]    = [0.113, 0.1026]
//	alpha2 = [(0.0791+0.04104)·0.5, (0.0339+0.06156)·0.1]
//	       = [0.06007, 0.009546]
//	total  = 0.069616
func TestForward_GoldenTwoState(t *testing.T) {
	m := twoStateModel(t)

	res := m.Forward([]int{0, 1, 0})
	assert.InDelta(t, math.Log(0.069616), res.LogLikelihood, 1e-9)

	require.Len(t, res.Alpha, 3)
	assert.InDelta(t, math.Log(0.3), res.Alpha[0][0], 1e-12)
	assert.InDelta(t, math.Log(0.04), res.Alpha[0][1], 1e-12)
	assert.InDelta(t, math.Log(0.113), res.Alpha[1][0], 1e-9)
	assert.InDelta(t, math.Log(0.1026), res.Alpha[1][1], 1e-9)
	assert.InDelta(t, math.Log(0.06007), res.Alpha[2][0], 1e-9)
	assert.InDelta(t, math.Log(0.009546), res.Alpha[2][1], 1e-9)
}

// TestForward_DominatesViterbi verifies sum-over-paths ≥ max-over-paths
// for assorted observation sequences.
func TestForward_DominatesViterbi(t *testing.T) {
	m := twoStateModel(t)

	for _, obs := range [][]int{{0}, {1, 1}, {0, 1, 0}, {1, 0, 0, 1, 1}} {
		forward := m.Likelihood(obs)
		best := m.Viterbi(obs).LogProb
		assert.GreaterOrEqual(t, forward, best,
			"total likelihood must dominate the single best path for %v", obs)
	}
}

// TestForward_SingleStateClosedForm verifies the one-state likelihood
// log(initial[0]) + Σ log(emission[0][obs[t]]).
func TestForward_SingleStateClosedForm(t *testing.T) {
	m, err := markov.NewModel(
		[][]float64{{1}},
		[][]float64{{0.2, 0.8}},
		[]float64{1},
	)
	require.NoError(t, err)

	obs := []int{0, 1, 1, 0, 1}
	want := math.Log(1.0)
	for _, o := range obs {
		want += math.Log([]float64{0.2, 0.8}[o])
	}
	assert.InDelta(t, want, m.Likelihood(obs), 1e-12)

	// Viterbi agrees exactly when only one path exists.
	assert.InDelta(t, want, m.Viterbi(obs).LogProb, 1e-12)
}

// TestForward_EmptyObservations verifies −Inf and an empty lattice.
func TestForward_EmptyObservations(t *testing.T) {
	m := twoStateModel(t)

	res := m.Forward([]int{})
	assert.True(t, math.IsInf(res.LogLikelihood, -1))
	assert.Empty(t, res.Alpha)
	assert.True(t, math.IsInf(m.Likelihood(nil), -1))
}

// TestForward_OutOfVocabulary verifies OOV symbols collapse the
// likelihood to −Inf without NaN anywhere in the lattice.
func TestForward_OutOfVocabulary(t *testing.T) {
	m := twoStateModel(t)

	res := m.Forward([]int{0, 5, 1})
	assert.True(t, math.IsInf(res.LogLikelihood, -1))
	for t2, row := range res.Alpha {
		for i, v := range row {
			assert.False(t, math.IsNaN(v), "alpha[%d][%d] must not be NaN", t2, i)
		}
	}
}
