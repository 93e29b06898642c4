// Package lpc implements linear-predictive formant analysis: centered
// Hann-windowed frames, autocorrelation, the Levinson-Durbin recursion,
// pole extraction from the prediction polynomial and formant candidate
// selection.
package lpc

import (
	"errors"
	"math"

	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/floats"
)

// ErrSignalTooShort reports input shorter than one analysis window.
var ErrSignalTooShort = errors.New("lpc: signal shorter than one analysis window")

// Config holds all analysis parameters.
type Config struct {
	SampleRate   int     // analysis rate in Hz
	Order        int     // prediction order
	HopSize      int     // hop between frames in samples; the window is twice this
	PreEmphasis  float64 // first-order high-pass coefficient
	MinFreq      float64 // lower edge of the formant admission band, Hz
	MaxFreq      float64 // upper edge of the formant admission band, Hz
	MaxBandwidth float64 // widest admissible resonance, Hz
	SilenceFloor float64 // zero-lag energy below which a frame is silent
}

// DefaultConfig returns the standard analysis configuration.
func DefaultConfig() Config {
	return Config{
		SampleRate:   8000,
		Order:        12,
		HopSize:      256,
		PreEmphasis:  0.9,
		MinFreq:      90,
		MaxFreq:      4000,
		MaxBandwidth: 600,
		SilenceFloor: 1e-10,
	}
}

// WindowSize returns the analysis window length, two hops.
func (c Config) WindowSize() int { return 2 * c.HopSize }

// Model is a fitted all-pole model of one frame. A[0] is always 1 and
// the poles are the roots of z^p - A[1]z^(p-1) - ... - A[p].
type Model struct {
	A    []float64
	Gain float64
}

// Frame is the analysis result of one hop.
type Frame struct {
	Time     float64 // frame center in seconds from buffer start
	Model    Model
	Formants []Formant // ascending by frequency
}

// PreEmphasize applies a first-order high-pass filter: y[n] = x[n] - alpha*x[n-1].
func PreEmphasize(samples []float64, alpha float64) []float64 {
	if len(samples) == 0 {
		return nil
	}
	out := make([]float64, len(samples))
	out[0] = samples[0]
	for i := 1; i < len(samples); i++ {
		out[i] = samples[i] - alpha*samples[i-1]
	}
	return out
}

// frameAt copies the window centered on sample center into dst, zero
// padding where the window extends past the buffer.
func frameAt(samples []float64, center int, dst []float64) {
	start := center - len(dst)/2
	for i := range dst {
		j := start + i
		if j >= 0 && j < len(samples) {
			dst[i] = samples[j]
		} else {
			dst[i] = 0
		}
	}
}

// Autocorrelate computes the biased autocorrelation of x for lags
// 0..maxLag: r[k] = sum over j of x[j]*x[j+k].
func Autocorrelate(x []float64, maxLag int) []float64 {
	r := make([]float64, maxLag+1)
	for k := 0; k <= maxLag && k < len(x); k++ {
		r[k] = floats.Dot(x[:len(x)-k], x[k:])
	}
	return r
}

// LevinsonDurbin fits an all-pole model of the given order to the
// autocorrelation sequence r (lags 0..order). Near-silent input, with
// r[0] below floor, yields the identity model with zero gain. The
// recursion halts early if the running prediction error reaches zero,
// which also zeroes the gain.
func LevinsonDurbin(r []float64, order int, floor float64) Model {
	a := make([]float64, order+1)
	a[0] = 1
	if r[0] < floor {
		return Model{A: a}
	}

	e := r[0]
	prev := make([]float64, order+1)
	for i := 1; i <= order; i++ {
		acc := r[i]
		for j := 1; j < i; j++ {
			acc -= a[j] * r[i-j]
		}
		lambda := acc / e

		copy(prev, a[:i])
		for j := 1; j < i; j++ {
			a[j] = prev[j] - lambda*prev[i-j]
		}
		a[i] = lambda

		e *= 1 - lambda*lambda
		if e <= 0 {
			break
		}
	}
	return Model{A: a, Gain: math.Sqrt(math.Max(e, 0))}
}

// Extract runs the full analysis over a sample buffer at cfg.SampleRate:
// pre-emphasis, one centered zero-padded Hann frame per hop, an all-pole
// fit and formant candidate selection from the fitted poles. Frames near
// either edge of the buffer are padded with zeros rather than dropped,
// so every hop yields a frame.
func Extract(samples []float64, cfg Config) ([]Frame, error) {
	winLen := cfg.WindowSize()
	if len(samples) < winLen {
		return nil, ErrSignalTooShort
	}

	// 1. Pre-emphasis
	emphasized := PreEmphasize(samples, cfg.PreEmphasis)

	// 2. Window and fit each hop
	win := window.Hann(winLen)
	numFrames := (len(samples) + cfg.HopSize - 1) / cfg.HopSize
	frames := make([]Frame, 0, numFrames)
	buf := make([]float64, winLen)
	for i := 0; i < numFrames; i++ {
		center := i * cfg.HopSize
		frameAt(emphasized, center, buf)
		floats.Mul(buf, win)

		r := Autocorrelate(buf, cfg.Order)
		model := LevinsonDurbin(r, cfg.Order, cfg.SilenceFloor)

		// 3. Pole structure -> formant candidates
		var formants []Formant
		if model.Gain > 0 {
			formants = SelectFormants(Roots(model), model.Gain, cfg)
		}
		frames = append(frames, Frame{
			Time:     float64(center) / float64(cfg.SampleRate),
			Model:    model,
			Formants: formants,
		})
	}
	return frames, nil
}
