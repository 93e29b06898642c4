package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iso226/sinewave-go/audio"
	"github.com/iso226/sinewave-go/lpc"
)

func main() {
	wavPath := flag.String("wav", "", "path to input WAV file")
	rate := flag.Int("rate", 8000, "analysis sample rate")
	hop := flag.Int("hop", 256, "hop size in samples at the analysis rate")
	order := flag.Int("order", 12, "LPC order")
	envFrame := flag.Int("envelope", -1, "print the spectral envelope of this frame instead of the candidate table")
	bins := flag.Int("bins", 512, "FFT size for -envelope")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: formants -wav AUDIO [options]")
		fmt.Fprintln(os.Stderr, "  Prints per-frame formant candidates from LPC analysis.")
		fmt.Fprintln(os.Stderr, "  Columns: time, gain, then freq:bandwidth per candidate.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *wavPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	clip, err := audio.ReadWAVFile(*wavPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	clip = audio.Resample(clip, *rate)
	if clip == nil {
		fmt.Fprintf(os.Stderr, "Error: bad analysis rate %d\n", *rate)
		os.Exit(1)
	}

	cfg := lpc.DefaultConfig()
	cfg.SampleRate = *rate
	cfg.HopSize = *hop
	cfg.Order = *order

	frames, err := lpc.Extract(clip.Samples, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *envFrame >= 0 {
		if *envFrame >= len(frames) {
			fmt.Fprintf(os.Stderr, "frame %d out of range (0-%d)\n", *envFrame, len(frames)-1)
			os.Exit(1)
		}
		if *bins <= *order {
			fmt.Fprintf(os.Stderr, "Error: -bins %d must exceed -order %d\n", *bins, *order)
			os.Exit(1)
		}
		env := lpc.Envelope(frames[*envFrame].Model, *bins)
		for k, v := range env {
			fmt.Printf("%.1f\t%.6f\n", float64(k)*float64(*rate)/float64(*bins), v)
		}
		return
	}

	for _, f := range frames {
		fmt.Printf("%.4f\t%.4f", f.Time, f.Model.Gain)
		for _, c := range f.Formants {
			fmt.Printf("\t%.0f:%.0f", c.Freq, c.Bandwidth)
		}
		fmt.Println()
	}
}
