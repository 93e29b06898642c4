package tts

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/iso226/sinewave-go/audio"
)

// stubBinary writes an executable script that stands in for espeak.
func stubBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts need a unix shell")
	}
	path := filepath.Join(t.TempDir(), "espeak-stub")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

// fixtureWAV writes a short tone to disk and returns its path and
// samples.
func fixtureWAV(t *testing.T) (string, []float64) {
	t.Helper()
	clip := &audio.Clip{Rate: 8000, Samples: make([]float64, 160)}
	for i := range clip.Samples {
		clip.Samples[i] = 0.25 * math.Sin(2*math.Pi*440*float64(i)/8000)
	}
	path := filepath.Join(t.TempDir(), "fixture.wav")
	if err := audio.WriteWAVFile(path, clip); err != nil {
		t.Fatal(err)
	}
	return path, clip.Samples
}

func TestEspeak_Synthesize(t *testing.T) {
	fixture, want := fixtureWAV(t)
	bin := stubBinary(t, "#!/bin/sh\ncp \""+fixture+"\" \"$2\"\n")

	e := &Espeak{Binary: bin}
	got, err := e.Synthesize(context.Background(), "hello")
	if err != nil {
		t.Fatal(err)
	}
	if got.Rate != 8000 {
		t.Errorf("Rate = %d, want 8000", got.Rate)
	}
	if len(got.Samples) != len(want) {
		t.Fatalf("len(Samples) = %d, want %d", len(got.Samples), len(want))
	}
	for i := range want {
		if math.Abs(got.Samples[i]-want[i]) > 1e-3 {
			t.Fatalf("Samples[%d] = %f, want %f", i, got.Samples[i], want[i])
		}
	}
}

func TestEspeak_ArgumentOrder(t *testing.T) {
	fixture, _ := fixtureWAV(t)
	argFile := filepath.Join(t.TempDir(), "args")
	bin := stubBinary(t, "#!/bin/sh\necho \"$@\" > \""+argFile+"\"\ncp \""+fixture+"\" \"$2\"\n")

	e := &Espeak{Binary: bin, Voice: "en-us", Speed: 140}
	if _, err := e.Synthesize(context.Background(), "hello world"); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(argFile)
	if err != nil {
		t.Fatal(err)
	}
	args := string(raw)
	if !strings.HasPrefix(args, "-w ") {
		t.Errorf("args = %q, want -w first", args)
	}
	for _, want := range []string{"-v en-us", "-s 140", "hello world"} {
		if !strings.Contains(args, want) {
			t.Errorf("args = %q, missing %q", args, want)
		}
	}
}

func TestEspeak_BinaryMissing(t *testing.T) {
	e := &Espeak{Binary: filepath.Join(t.TempDir(), "no-such-espeak")}
	if _, err := e.Synthesize(context.Background(), "hello"); err == nil {
		t.Fatal("want error for missing binary")
	}
}

func TestEspeak_FailureCarriesOutput(t *testing.T) {
	bin := stubBinary(t, "#!/bin/sh\necho voice not found >&2\nexit 1\n")
	e := &Espeak{Binary: bin}
	_, err := e.Synthesize(context.Background(), "hello")
	if err == nil {
		t.Fatal("want error for failing binary")
	}
	if !strings.Contains(err.Error(), "voice not found") {
		t.Errorf("err = %v, want the binary's stderr in the message", err)
	}
}

func TestEspeak_ContextDeadline(t *testing.T) {
	bin := stubBinary(t, "#!/bin/sh\nsleep 5\n")
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	e := &Espeak{Binary: bin}
	start := time.Now()
	_, err := e.Synthesize(ctx, "hello")
	if err == nil {
		t.Fatal("want error after context deadline")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("synthesize returned after %v, want prompt cancellation", elapsed)
	}
}

func TestEspeak_UndecodableOutput(t *testing.T) {
	bin := stubBinary(t, "#!/bin/sh\necho not a wav > \"$2\"\n")
	e := &Espeak{Binary: bin}
	_, err := e.Synthesize(context.Background(), "hello")
	if err == nil {
		t.Fatal("want decode error")
	}
	if !strings.Contains(err.Error(), "decode") {
		t.Errorf("err = %v, want a decode error", err)
	}
}
