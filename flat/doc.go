// Package flat exposes the computational core through flat, numeric,
// language-neutral calls: every sequence and matrix travels as a
// one-dimensional row-major slice plus explicit dimensions, the shape
// a host-language marshalling layer naturally produces.
//
// 🚀 What belongs here?
//
//	Thin reshaping over the real engines — no algorithmic logic:
//	  • ExtractFeatures / ExtractCepstral → feature
//	  • AlignDistance / AlignNormalizedDistance → align
//	  • Decode / SequenceLikelihood → markov
//
// The observation vocabulary size is an explicit parameter on every
// decoding call; nothing assumes a fixed symbol count.
//
// Failure follows the core's two channels: impossible distances are
// +Inf and zero-probability likelihoods are −Inf in the value domain,
// while malformed shapes (lengths that don't factor into the declared
// dimensions) surface as wrapped sentinel errors.
//
// Buffer ownership and lifetime across the host boundary belong to the
// caller; every function here reads its inputs and returns fresh
// slices.
package flat
