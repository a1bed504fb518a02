package feature

import "fmt"

// Extract slices audio into overlapping frames of cfg.FrameSize
// advancing by cfg.HopSize, stopping once a full frame no longer fits,
// and returns one canonical Vector per frame in temporal order.
//
// The filter bank is built once and reused across frames. An audio
// buffer shorter than one frame yields an empty, error-free result.
func Extract(audio []float64, cfg Config) ([]Vector, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("frame=%d hop=%d rate=%g: %w",
			cfg.FrameSize, cfg.HopSize, cfg.SampleRate, err)
	}

	fb := NewFilterBank(cfg.NumFilters, cfg.FrameSize, cfg.SampleRate)

	var vectors []Vector
	for start := 0; start+cfg.FrameSize <= len(audio); start += cfg.HopSize {
		frame := audio[start : start+cfg.FrameSize]

		vec := make(Vector, 0, Width(cfg.NumCoeffs))
		vec = append(vec, CepstralWithBank(frame, cfg.NumCoeffs, fb)...)
		vec = append(vec,
			Energy(frame),
			ZeroCrossingRate(frame),
			SpectralCentroid(frame, cfg.SampleRate),
			EstimatePitch(frame, cfg.SampleRate),
		)
		vectors = append(vectors, vec)
	}

	return vectors, nil
}
