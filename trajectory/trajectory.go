// Package trajectory turns per-frame formant candidates, or a phoneme
// sequence when no waveform is available, into the three smoothed
// frequency/amplitude tracks that drive sinewave synthesis.
package trajectory

import "errors"

// ErrDegenerate marks an analyzed utterance whose amplitudes are zero
// everywhere, leaving the global normalization with nothing to scale.
var ErrDegenerate = errors.New("trajectory: all amplitudes are zero")

// Method tags which path produced a trajectory.
type Method string

const (
	MethodLPC     Method = "lpc"
	MethodPhoneme Method = "phoneme-mapping"
)

// Point is one sample of a formant track.
type Point struct {
	T    float64 `json:"t"`
	Freq float64 `json:"freq"`
	Amp  float64 `json:"amp"`
}

// Track is a time-ordered list of points for one formant.
type Track []Point

// Tracks holds the three formant tracks of an utterance.
type Tracks struct {
	F1 Track `json:"F1"`
	F2 Track `json:"F2"`
	F3 Track `json:"F3"`
}

// RawAudio carries the analyzed samples so a caller can play back the
// original next to the sinewave rendering.
type RawAudio struct {
	Samples    []float64 `json:"samples"`
	SampleRate int       `json:"sampleRate"`
}

// Trajectory is the extraction result: three tracks over a shared time
// domain [0, TotalDuration], tagged with the method that produced them.
// It is immutable once returned.
type Trajectory struct {
	TotalDuration float64   `json:"totalDuration"`
	Tracks        Tracks    `json:"tracks"`
	RawAudio      *RawAudio `json:"rawAudio,omitempty"`
	Method        Method    `json:"method"`
}

// Config holds the smoothing, normalization and fallback-sampling
// parameters.
type Config struct {
	Alpha          float64    // exponential smoothing factor for frequency and magnitude
	Decay          float64    // magnitude retention on frames with no candidate for a tier
	SeedFreqs      [3]float64 // tier starting frequencies, Hz
	Weights        [3]float64 // tier loudness weights
	Exponent       float64    // compressive power applied by the global normalization
	SampleInterval float64    // fallback trajectory point spacing, seconds
	EdgePad        float64    // fallback leading/trailing silence, seconds
}

// DefaultConfig returns the parameters the engine ships with.
func DefaultConfig() Config {
	return Config{
		Alpha:          0.3,
		Decay:          0.8,
		SeedFreqs:      [3]float64{500, 1500, 2500},
		Weights:        [3]float64{1.0, 0.7, 0.4},
		Exponent:       0.6,
		SampleInterval: 0.010,
		EdgePad:        0.020,
	}
}
