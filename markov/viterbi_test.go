package markov_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/resound/markov"
)

// TestViterbi_GoldenTwoState pins the hand-computed best path and
// probabilities for the reference model on obs=[0,1,0].
//
// Probability-space trellis:
//
//	delta0 = [0.6·0.5, 0.4·0.1]          = [0.3, 0.04]
//	delta1 = [0.21·0.5, 0.09·0.9]        = [0.105, 0.081]
//	delta2 = [0.0735·0.5, 0.0486·0.1]    = [0.03675, 0.00486]
func TestViterbi_GoldenTwoState(t *testing.T) {
	m := twoStateModel(t)

	res := m.Viterbi([]int{0, 1, 0})
	assert.Equal(t, []int{0, 0, 0}, res.Path)
	assert.InDelta(t, math.Log(0.03675), res.LogProb, 1e-12)

	require.Len(t, res.StepLogProbs, 3)
	assert.InDelta(t, math.Log(0.3), res.StepLogProbs[0], 1e-12)
	assert.InDelta(t, math.Log(0.105), res.StepLogProbs[1], 1e-12)
	assert.InDelta(t, math.Log(0.03675), res.StepLogProbs[2], 1e-12)
}

// TestViterbi_SingleState verifies the constant all-zero path of a
// one-state model.
func TestViterbi_SingleState(t *testing.T) {
	m, err := markov.NewModel(
		[][]float64{{1}},
		[][]float64{{0.5, 0.5}},
		[]float64{1},
	)
	require.NoError(t, err)

	res := m.Viterbi([]int{0, 1, 1, 0})
	assert.Equal(t, []int{0, 0, 0, 0}, res.Path)
	assert.InDelta(t, 4*math.Log(0.5), res.LogProb, 1e-12)
}

// TestViterbi_EmptyObservations verifies the empty-sequence contract.
func TestViterbi_EmptyObservations(t *testing.T) {
	m := twoStateModel(t)

	res := m.Viterbi(nil)
	assert.Empty(t, res.Path)
	assert.True(t, math.IsInf(res.LogProb, -1))
	assert.Empty(t, res.StepLogProbs)
}

// TestViterbi_OutOfVocabulary verifies symbols outside the vocabulary
// force −Inf without producing NaN, and the path keeps full length.
func TestViterbi_OutOfVocabulary(t *testing.T) {
	m := twoStateModel(t)

	for _, obs := range [][]int{{0, 7, 0}, {-1, 0}, {0, 1, 99}} {
		res := m.Viterbi(obs)
		assert.Len(t, res.Path, len(obs), "path length equals observation count")
		assert.True(t, math.IsInf(res.LogProb, -1), "OOV symbol must collapse to −Inf")
		for _, p := range res.StepLogProbs {
			assert.False(t, math.IsNaN(p), "−Inf must propagate, never NaN")
		}
	}
}

// TestViterbi_ZeroTransitionsPropagate verifies a deterministic chain
// with hard zeros decodes exactly, with log(0) = −Inf staying out of
// the chosen path.
func TestViterbi_ZeroTransitionsPropagate(t *testing.T) {
	m, err := markov.NewModel(
		[][]float64{{0, 1}, {1, 0}}, // forced alternation
		[][]float64{{1, 0}, {0, 1}}, // state i emits symbol i
		[]float64{1, 0},
	)
	require.NoError(t, err)

	res := m.Viterbi([]int{0, 1, 0, 1})
	assert.Equal(t, []int{0, 1, 0, 1}, res.Path)
	assert.Equal(t, 0.0, res.LogProb, "a probability-1 path has log-prob 0")
}
