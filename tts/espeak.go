// Package tts speaks text through an external synthesizer binary,
// giving the player a waveform to analyze.
package tts

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/iso226/sinewave-go/audio"
)

// Espeak runs the espeak binary and decodes the WAV it writes. The zero
// value runs "espeak" from PATH with its default voice and speed.
type Espeak struct {
	Binary string // defaults to "espeak"
	Voice  string // -v argument; empty keeps the binary default
	Speed  int    // words per minute; 0 keeps the binary default
}

// Synthesize speaks text into a temporary WAV file under ctx and
// returns the decoded clip. The temporary file is removed before
// returning.
func (e *Espeak) Synthesize(ctx context.Context, text string) (*audio.Clip, error) {
	bin := e.Binary
	if bin == "" {
		bin = "espeak"
	}

	dir, err := os.MkdirTemp("", "sinewave-tts-")
	if err != nil {
		return nil, fmt.Errorf("tts: temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	wavPath := filepath.Join(dir, "speech.wav")
	args := []string{"-w", wavPath}
	if e.Voice != "" {
		args = append(args, "-v", e.Voice)
	}
	if e.Speed > 0 {
		args = append(args, "-s", strconv.Itoa(e.Speed))
	}
	args = append(args, text)

	cmd := exec.CommandContext(ctx, bin, args...)
	// A descendant that inherits the output pipe would otherwise keep
	// Wait blocked past cancellation.
	cmd.WaitDelay = time.Second
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("tts: %s: %w (%s)", bin, err, out)
	}

	clip, err := audio.ReadWAVFile(wavPath)
	if err != nil {
		return nil, fmt.Errorf("tts: decode %s output: %w", bin, err)
	}
	return clip, nil
}
