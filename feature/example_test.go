package feature_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/resound/feature"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleExtract
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Turn half a second of a 200 Hz tone into a descriptor sequence.
//	  sampleRate = 8000 Hz, frame = 400 samples, hop = 200 samples
//
// Each resulting vector is [13 cepstra, energy, zcr, centroid, pitch],
// and the pitch estimator recovers the tone.
//
// Complexity: O(frames·frameSize²) time, O(frames·width) memory
func ExampleExtract() {
	cfg := feature.Config{
		SampleRate: 8000,
		FrameSize:  400,
		HopSize:    200,
		NumCoeffs:  13,
		NumFilters: 26,
	}

	audio := make([]float64, 4000)
	for i := range audio {
		audio[i] = math.Sin(2 * math.Pi * 200 * float64(i) / cfg.SampleRate)
	}

	vectors, err := feature.Extract(audio, cfg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	pitch := vectors[0][feature.Width(cfg.NumCoeffs)-1]
	fmt.Printf("frames=%d width=%d pitch=%.0fHz\n", len(vectors), len(vectors[0]), pitch)
	// Output:
	// frames=19 width=17 pitch=200Hz
}
