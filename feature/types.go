package feature

import "errors"

// ErrBadConfig is returned by Extract when the configuration cannot
// describe a valid framing (non-positive frame, hop or sample rate).
var ErrBadConfig = errors.New("feature: invalid extraction config")

const (
	// DefaultNumCoeffs is the canonical cepstral width.
	DefaultNumCoeffs = 13

	// DefaultNumFilters is the canonical mel filter count.
	DefaultNumFilters = 26

	// energyFloor keeps log filter-bank energies finite on silence.
	energyFloor = 1e-10
)

// Vector is one frame's canonical descriptor:
//
//	[cepstral_0 … cepstral_{k−1}, energy, zcr, centroid, pitch]
//
// The layout is a fixed schema; positions carry meaning.
type Vector []float64

// Width reports the canonical vector width for a cepstral order:
// nCoeffs cepstra plus the four scalar descriptors.
func Width(nCoeffs int) int { return nCoeffs + 4 }

// Config parametrizes Extract.
//
// Fields:
//   - SampleRate — sampling frequency of the audio buffer, in Hz.
//   - FrameSize  — samples per analysis frame.
//   - HopSize    — samples advanced between successive frames.
//   - NumCoeffs  — cepstral coefficients kept per frame.
//   - NumFilters — triangular mel filters in the bank.
type Config struct {
	SampleRate float64
	FrameSize  int
	HopSize    int
	NumCoeffs  int
	NumFilters int
}

// DefaultConfig returns the standard extraction configuration:
// 16 kHz audio, 512-sample frames with 50% overlap, 13 cepstra over a
// 26-filter bank.
func DefaultConfig() Config {
	return Config{
		SampleRate: 16000,
		FrameSize:  512,
		HopSize:    256,
		NumCoeffs:  DefaultNumCoeffs,
		NumFilters: DefaultNumFilters,
	}
}

// validate reports whether the config describes a usable framing.
func (c Config) validate() error {
	switch {
	case c.SampleRate <= 0:
		return ErrBadConfig
	case c.FrameSize <= 0 || c.HopSize <= 0:
		return ErrBadConfig
	case c.NumCoeffs < 0 || c.NumFilters <= 0:
		return ErrBadConfig
	}

	return nil
}
