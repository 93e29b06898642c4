// Package audio holds the mono sample-buffer type and the WAV file I/O
// used by the analysis pipeline and the command line tools.
package audio

// Clip is a mono audio buffer with normalized float64 samples in
// [-1.0, 1.0] and the rate they were captured at. Once captured a clip
// is treated as immutable; operations return new clips.
type Clip struct {
	Samples []float64
	Rate    int
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c == nil || c.Rate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.Rate)
}
