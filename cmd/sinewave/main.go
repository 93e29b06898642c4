package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	sinewave "github.com/iso226/sinewave-go"
	"github.com/iso226/sinewave-go/audio"
	"github.com/iso226/sinewave-go/synth"
	"github.com/iso226/sinewave-go/trajectory"
	"github.com/iso226/sinewave-go/tts"
)

func main() {
	text := flag.String("text", "", "text to extract a trajectory for")
	wavPath := flag.String("wav", "", "analyze this WAV file instead of synthesizing speech")
	espeakBin := flag.String("espeak", "", "synthesize speech with this espeak binary (e.g. espeak)")
	voice := flag.String("voice", "", "espeak voice")
	speed := flag.Int("speed", 0, "espeak speaking rate in words per minute")
	timeout := flag.Duration("timeout", 10*time.Second, "cap on one synthesizer call")
	output := flag.String("output", "", "output file for the trajectory JSON (default: stdout)")
	render := flag.String("render", "", "also render the trajectory as sinewave speech to this WAV file")
	renderRate := flag.Int("render-rate", 8000, "sample rate for -render")
	verbose := flag.Bool("v", false, "verbose output")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: sinewave -text TEXT [options]")
		fmt.Fprintln(os.Stderr, "  Extracts a three-formant sinewave-speech trajectory.")
		fmt.Fprintln(os.Stderr, "  With -espeak the text is spoken and LPC-analyzed; with -wav an")
		fmt.Fprintln(os.Stderr, "  existing recording is analyzed; otherwise the trajectory comes")
		fmt.Fprintln(os.Stderr, "  from phoneme mapping alone.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *text == "" && *wavPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg := sinewave.DefaultConfig()
	cfg.SourceTimeout = *timeout
	opts := []sinewave.Option{sinewave.WithConfig(cfg)}
	if *espeakBin != "" {
		opts = append(opts, sinewave.WithSource(&tts.Espeak{
			Binary: *espeakBin,
			Voice:  *voice,
			Speed:  *speed,
		}))
	}
	if *verbose {
		opts = append(opts, sinewave.WithLogger(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	}
	p := sinewave.NewPlayer(opts...)

	var tr *trajectory.Trajectory
	var err error
	if *wavPath != "" {
		tr, err = p.GenerateFromFile(*text, *wavPath)
	} else {
		tr, err = p.Generate(context.Background(), *text)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "method: %s\n", tr.Method)
		fmt.Fprintf(os.Stderr, "duration: %.3fs, %d points per track\n", tr.TotalDuration, len(tr.Tracks.F1))
		if reason := p.LastError(); reason != nil {
			fmt.Fprintf(os.Stderr, "fallback reason: %v\n", reason)
		}
	}

	if *render != "" {
		scfg := synth.DefaultConfig()
		scfg.SampleRate = *renderRate
		if err := audio.WriteWAVFile(*render, synth.Render(tr, scfg)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	w := os.Stdout
	if *output != "" {
		w, err = os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create %s: %v\n", *output, err)
			os.Exit(1)
		}
		defer w.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
