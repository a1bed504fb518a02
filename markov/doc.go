// Package markov decodes discrete observation sequences against a
// fixed hidden Markov model: most likely state paths (Viterbi) and
// total sequence likelihoods (forward/backward), all in the log domain.
//
// 🚀 What is an HMM here?
//
//	A state machine over discrete time steps t = 0…T−1:
//	  • transition[i][j] — probability of moving from state i to j
//	  • emission[i][o]   — probability of state i emitting symbol o
//	  • initial[i]       — probability of starting in state i
//	The matrices are supplied, never learned, and never normalized:
//	rows that don't sum to 1 produce whatever the arithmetic produces.
//
// ✨ Operations:
//   - Viterbi  — max-over-paths decoding with backpointer trellis
//   - Forward  — sum-over-paths likelihood with the alpha lattice
//   - Backward — the beta lattice (no scalar reduction at this layer)
//   - Likelihood — Forward's scalar, for callers that drop the lattice
//   - Posterior — per-step state posteriors from alpha, beta and the
//     sequence likelihood
//
// All probability arithmetic happens as logarithms: products become
// sums, sums become stabilized log-sum-exp, and a true zero in any
// matrix legitimately propagates as −Inf — never NaN. Out-of-range
// symbols and empty observation sequences likewise surface as −Inf,
// not as errors.
//
// A Model snapshots its parameters at construction and is read-only
// afterward, so one Model safely serves concurrent decode calls. Every
// call allocates its own T×numStates lattices and returns them.
//
// Complexity: all decoders run in O(T·numStates²) time and
// O(T·numStates) memory.
package markov
