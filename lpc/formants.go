package lpc

import (
	"math"
	"sort"
)

// Formant is a resonance candidate derived from one complex pole.
type Formant struct {
	Freq      float64 // resonance frequency, Hz
	Bandwidth float64 // -3 dB width from the pole radius, Hz
	Mag       float64 // loudness proxy from gain and pole radius
}

// minImag is the imaginary floor below which a root counts as real and
// carries no resonance.
const minImag = 0.001

// SelectFormants converts the complex poles of a fitted model into
// admissible formant candidates, ascending by frequency. The pole angle
// gives the frequency, the pole radius gives the bandwidth, and the
// magnitude grows as the pole approaches the unit circle: a sharper
// resonance is a louder one. Candidates outside (MinFreq, MaxFreq) or
// with a bandwidth outside (0, MaxBandwidth) are rejected.
func SelectFormants(roots []Root, gain float64, cfg Config) []Formant {
	rate := float64(cfg.SampleRate)
	var out []Formant
	for _, r := range roots {
		if r.Im <= minImag {
			continue
		}
		freq := math.Atan2(r.Im, r.Re) * rate / (2 * math.Pi)
		if freq <= cfg.MinFreq || freq >= cfg.MaxFreq {
			continue
		}
		radius := math.Hypot(r.Re, r.Im)
		bw := -math.Log(radius) * rate / math.Pi
		if bw <= 0 || bw >= cfg.MaxBandwidth {
			continue
		}
		out = append(out, Formant{
			Freq:      freq,
			Bandwidth: bw,
			Mag:       gain / math.Max(1-radius, 0.01),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Freq < out[j].Freq })
	return out
}
