package audio

import (
	"errors"
	"fmt"
	"io"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/iso226/sinewave-go/internal/interp"
)

// ReadWAV decodes a PCM WAV stream into a Clip. Multi-channel input is
// mixed down to mono by averaging, samples are scaled by the source bit
// depth into [-1.0, 1.0].
func ReadWAV(r io.ReadSeeker) (*Clip, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, errors.New("not a valid WAV file")
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("read PCM data: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil, errors.New("missing format chunk")
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float64(int(1) << (bitDepth - 1))

	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0
		for ch := 0; ch < channels; ch++ {
			sum += buf.Data[i*channels+ch]
		}
		samples[i] = float64(sum) / float64(channels) / scale
	}

	return &Clip{Samples: samples, Rate: buf.Format.SampleRate}, nil
}

// ReadWAVFile is a convenience wrapper that opens a file path.
func ReadWAVFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWAV(f)
}

// WriteWAV encodes the clip as 16-bit mono PCM.
func WriteWAV(w io.WriteSeeker, c *Clip) error {
	if c == nil || c.Rate <= 0 {
		return errors.New("empty clip")
	}

	e := wav.NewEncoder(w, c.Rate, 16, 1, 1)
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: 1, SampleRate: c.Rate},
		Data:           make([]int, len(c.Samples)),
		SourceBitDepth: 16,
	}
	for i, s := range c.Samples {
		buf.Data[i] = int(interp.Clamp(s, -1, 1) * 32767)
	}
	if err := e.Write(buf); err != nil {
		return fmt.Errorf("write PCM data: %w", err)
	}
	return e.Close()
}

// WriteWAVFile is a convenience wrapper that creates a file path.
func WriteWAVFile(path string, c *Clip) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteWAV(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
