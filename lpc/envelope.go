package lpc

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Envelope evaluates the model's magnitude response Gain/|A(e^jw)| at
// nfft/2+1 points from DC to Nyquist, where A is the prediction error
// filter. Bin i corresponds to i*rate/nfft Hz. nfft must be larger than
// the model order, so that every coefficient lands in a bin; smaller or
// non-positive values return nil.
func Envelope(m Model, nfft int) []float64 {
	if nfft <= 0 || nfft < len(m.A) {
		return nil
	}
	coeffs := make([]float64, nfft)
	coeffs[0] = 1
	for j := 1; j < len(m.A); j++ {
		coeffs[j] = -m.A[j]
	}
	spec := fft.FFTReal(coeffs)

	out := make([]float64, nfft/2+1)
	for i := range out {
		out[i] = m.Gain / math.Max(cmplx.Abs(spec[i]), 1e-12)
	}
	return out
}
