// Package synth renders a formant trajectory as audible sinewave
// speech: one sinusoidal oscillator per track, each following its
// track's frequency and amplitude points.
package synth

import (
	"math"

	"github.com/iso226/sinewave-go/audio"
	"github.com/iso226/sinewave-go/internal/interp"
	"github.com/iso226/sinewave-go/trajectory"
)

// Config holds the rendering parameters.
type Config struct {
	SampleRate int
	MasterGain float64 // scales the oscillator sum; tier weights total 2.1, so 0.4 keeps peaks under 1
}

// DefaultConfig returns the parameters the engine ships with.
func DefaultConfig() Config {
	return Config{
		SampleRate: 8000,
		MasterGain: 0.4,
	}
}

// Render synthesizes the trajectory into a clip. Each track drives one
// oscillator: the phase accumulates the instantaneous frequency sample
// by sample, and frequency and amplitude interpolate linearly between
// the surrounding track points. Outside a track's points the nearest
// point holds.
func Render(tr *trajectory.Trajectory, cfg Config) *audio.Clip {
	rate := float64(cfg.SampleRate)
	n := int(tr.TotalDuration * rate)
	out := make([]float64, n)

	for _, track := range []trajectory.Track{tr.Tracks.F1, tr.Tracks.F2, tr.Tracks.F3} {
		if len(track) == 0 {
			continue
		}
		var theta float64
		seg := 0
		for i := 0; i < n; i++ {
			t := float64(i) / rate
			for seg+1 < len(track) && track[seg+1].T <= t {
				seg++
			}
			a := track[seg]
			freq, amp := a.Freq, a.Amp
			if seg+1 < len(track) {
				if b := track[seg+1]; b.T > a.T {
					u := (t - a.T) / (b.T - a.T)
					freq = interp.Lerp(a.Freq, b.Freq, u)
					amp = interp.Lerp(a.Amp, b.Amp, u)
				}
			}
			theta += 2 * math.Pi * freq / rate
			out[i] += amp * math.Sin(theta)
		}
	}

	for i := range out {
		out[i] *= cfg.MasterGain
	}
	return &audio.Clip{Samples: out, Rate: cfg.SampleRate}
}
