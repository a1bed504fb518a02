package markov

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoStates is returned when a model would have zero states.
	ErrNoStates = errors.New("markov: model needs at least one state")

	// ErrShape is returned when matrix dimensions disagree with the
	// state or symbol count.
	ErrShape = errors.New("markov: matrix shape mismatch")
)

// Model is a fixed hidden Markov model. It snapshots its parameters at
// construction and never mutates them, so a single Model may serve
// concurrent Viterbi/Forward/Backward calls without synchronization.
//
// Only shapes are validated. Probability mass is deliberately not
// checked or normalized: rows that don't sum to 1 pass through and
// yield whatever the log-domain arithmetic yields.
type Model struct {
	numStates  int
	numSymbols int
	transition [][]float64
	emission   [][]float64
	initial    []float64
}

// NewModel builds a model from transition (numStates×numStates),
// emission (numStates×numSymbols) and initial (numStates) parameters.
// The symbol count is taken from the emission rows, which must all
// share one length.
func NewModel(transition, emission [][]float64, initial []float64) (*Model, error) {
	numStates := len(initial)
	if numStates == 0 {
		return nil, ErrNoStates
	}
	if len(transition) != numStates {
		return nil, fmt.Errorf("%d transition rows for %d states: %w",
			len(transition), numStates, ErrShape)
	}
	if len(emission) != numStates {
		return nil, fmt.Errorf("%d emission rows for %d states: %w",
			len(emission), numStates, ErrShape)
	}

	numSymbols := len(emission[0])
	m := &Model{
		numStates:  numStates,
		numSymbols: numSymbols,
		transition: make([][]float64, numStates),
		emission:   make([][]float64, numStates),
		initial:    append([]float64(nil), initial...),
	}
	for i := 0; i < numStates; i++ {
		if len(transition[i]) != numStates {
			return nil, fmt.Errorf("transition row %d has %d entries, want %d: %w",
				i, len(transition[i]), numStates, ErrShape)
		}
		if len(emission[i]) != numSymbols {
			return nil, fmt.Errorf("emission row %d has %d entries, want %d: %w",
				i, len(emission[i]), numSymbols, ErrShape)
		}
		m.transition[i] = append([]float64(nil), transition[i]...)
		m.emission[i] = append([]float64(nil), emission[i]...)
	}

	return m, nil
}

// NumStates reports the hidden-state count.
func (m *Model) NumStates() int { return m.numStates }

// NumSymbols reports the observation vocabulary size.
func (m *Model) NumSymbols() int { return m.numSymbols }

// logEmission returns log(emission[state][symbol]), or −Inf for a
// symbol outside [0, numSymbols) — an out-of-vocabulary observation is
// a zero-probability event.
func (m *Model) logEmission(state, symbol int) float64 {
	if symbol < 0 || symbol >= m.numSymbols {
		return math.Inf(-1)
	}

	return math.Log(m.emission[state][symbol])
}
