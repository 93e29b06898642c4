package trajectory

import (
	"math"

	"github.com/iso226/sinewave-go/lpc"
)

// Smoother folds per-frame formant candidates into three tracks. Tier
// state starts at the seed frequencies with zero magnitude; each frame
// either pulls a tier toward its candidate or decays it. Amplitudes are
// frame-relative until Finish runs the utterance-wide normalization.
type Smoother struct {
	cfg    Config
	freq   [3]float64
	mag    [3]float64
	tracks [3]Track
}

func NewSmoother(cfg Config) *Smoother {
	return &Smoother{cfg: cfg, freq: cfg.SeedFreqs}
}

// Add folds one frame at time t into the tier state and appends one
// point per track. Candidates arrive ascending by frequency and the
// first three claim F1, F2, F3; tiers left without a candidate keep
// their frequency and lose magnitude.
func (s *Smoother) Add(t float64, cands []lpc.Formant) {
	a := s.cfg.Alpha
	for k := 0; k < 3; k++ {
		if k < len(cands) {
			s.freq[k] = s.freq[k]*(1-a) + cands[k].Freq*a
			s.mag[k] = s.mag[k]*(1-a) + cands[k].Mag*a
		} else {
			s.mag[k] *= s.cfg.Decay
		}
	}

	frameMax := math.Max(s.mag[0], math.Max(s.mag[1], s.mag[2]))
	for k := 0; k < 3; k++ {
		var amp float64
		if frameMax > 0 {
			amp = s.mag[k] / frameMax * s.cfg.Weights[k]
		}
		s.tracks[k] = append(s.tracks[k], Point{T: t, Freq: s.freq[k], Amp: amp})
	}
}

// Finish rescales every amplitude against the utterance-wide maximum
// with a compressive power curve, so quiet utterances stay audible, and
// re-applies the tier weights. An utterance whose amplitudes are zero
// everywhere cannot be normalized and returns ErrDegenerate.
func (s *Smoother) Finish() (Tracks, error) {
	var max float64
	for k := range s.tracks {
		for _, p := range s.tracks[k] {
			if p.Amp > max {
				max = p.Amp
			}
		}
	}
	if max == 0 {
		return Tracks{}, ErrDegenerate
	}
	for k := range s.tracks {
		for i := range s.tracks[k] {
			p := &s.tracks[k][i]
			p.Amp = math.Pow(p.Amp/max, s.cfg.Exponent) * s.cfg.Weights[k]
		}
	}
	return Tracks{F1: s.tracks[0], F2: s.tracks[1], F3: s.tracks[2]}, nil
}
