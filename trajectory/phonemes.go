package trajectory

import (
	"github.com/iso226/sinewave-go/internal/interp"
	"github.com/iso226/sinewave-go/phoneme"
)

// target is one keyframe of the fallback trajectory.
type target struct {
	t    float64
	freq [3]float64
	amp  [3]float64
}

func silenceTarget(t float64) target {
	f := phoneme.PhonSIL.Formants()
	return target{t: t, freq: [3]float64{f.F1, f.F2, f.F3}}
}

// FromPhonemes builds a trajectory directly from timed phoneme units:
// one static formant target at the temporal center of each unit,
// silence targets bracketing the utterance, and cosine easing between
// neighboring targets sampled on a fixed grid. Frequency and amplitude
// ease independently. Unvoiced units keep their table frequencies but
// carry zero amplitude.
func FromPhonemes(units []phoneme.Unit, cfg Config) *Trajectory {
	total := 2 * cfg.EdgePad
	for _, u := range units {
		total += u.Duration
	}

	targets := make([]target, 0, len(units)+2)
	targets = append(targets, silenceTarget(0))
	at := cfg.EdgePad
	for _, u := range units {
		f := u.Phoneme.Formants()
		tg := target{
			t:    at + u.Duration/2,
			freq: [3]float64{f.F1, f.F2, f.F3},
		}
		if u.Phoneme.Voiced() {
			tg.amp = cfg.Weights
		}
		targets = append(targets, tg)
		at += u.Duration
	}
	targets = append(targets, silenceTarget(total))

	n := int(total/cfg.SampleInterval+1e-9) + 1
	var tracks [3]Track
	for k := range tracks {
		tracks[k] = make(Track, 0, n)
	}
	seg := 0
	for i := 0; i < n; i++ {
		ti := float64(i) * cfg.SampleInterval
		for seg+1 < len(targets) && targets[seg+1].t <= ti {
			seg++
		}
		a := targets[seg]
		freq, amp := a.freq, a.amp
		if seg+1 < len(targets) {
			if b := targets[seg+1]; b.t > a.t {
				alpha := (ti - a.t) / (b.t - a.t)
				for k := 0; k < 3; k++ {
					freq[k] = interp.CosineEase(a.freq[k], b.freq[k], alpha)
					amp[k] = interp.CosineEase(a.amp[k], b.amp[k], alpha)
				}
			}
		}
		for k := 0; k < 3; k++ {
			tracks[k] = append(tracks[k], Point{T: ti, Freq: freq[k], Amp: amp[k]})
		}
	}

	return &Trajectory{
		TotalDuration: total,
		Tracks:        Tracks{F1: tracks[0], F2: tracks[1], F3: tracks[2]},
		Method:        MethodPhoneme,
	}
}
