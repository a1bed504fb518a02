package feature

import "math"

// MelFromHz converts a frequency in Hz to the mel scale:
//
//	mel = 2595·log10(1 + f/700)
func MelFromHz(hz float64) float64 {
	return 2595.0 * math.Log10(1.0+hz/700.0)
}

// HzFromMel converts a mel value back to Hz:
//
//	f = 700·(10^(mel/2595) − 1)
//
// MelFromHz and HzFromMel are exact inverses within floating tolerance.
func HzFromMel(mel float64) float64 {
	return 700.0 * (math.Pow(10.0, mel/2595.0) - 1.0)
}
