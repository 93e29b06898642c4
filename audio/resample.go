package audio

import "github.com/iso226/sinewave-go/internal/interp"

// Resample converts the clip to the target sample rate using linear
// interpolation between neighboring samples. The input clip is returned
// unchanged when it already has the target rate. A nil clip, a clip
// without a positive rate, or a non-positive target yields nil.
func Resample(c *Clip, rate int) *Clip {
	if c == nil || c.Rate <= 0 || rate <= 0 {
		return nil
	}
	if c.Rate == rate || len(c.Samples) == 0 {
		return c
	}

	factor := float64(c.Rate) / float64(rate)
	newLen := int(float64(len(c.Samples)) / factor)
	if newLen == 0 {
		return &Clip{Samples: nil, Rate: rate}
	}

	out := make([]float64, newLen)
	for i := 0; i < newLen; i++ {
		srcIdx := float64(i) * factor
		idx0 := int(srcIdx)
		frac := srcIdx - float64(idx0)

		if idx0+1 < len(c.Samples) {
			out[i] = interp.Lerp(c.Samples[idx0], c.Samples[idx0+1], frac)
		} else if idx0 < len(c.Samples) {
			out[i] = c.Samples[idx0]
		}
	}

	return &Clip{Samples: out, Rate: rate}
}
