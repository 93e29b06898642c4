package trajectory

import (
	"math"
	"testing"

	"github.com/iso226/sinewave-go/phoneme"
)

// helloWorld is the unit sequence for "hello world": per-class
// durations with a word-gap silence between the words.
func helloWorld() []phoneme.Unit {
	return []phoneme.Unit{
		{Phoneme: phoneme.PhonHH, Duration: 0.04},
		{Phoneme: phoneme.PhonAH, Duration: 0.10},
		{Phoneme: phoneme.PhonL, Duration: 0.07},
		{Phoneme: phoneme.PhonOW, Duration: 0.10},
		{Phoneme: phoneme.PhonSIL, Duration: 0.06},
		{Phoneme: phoneme.PhonW, Duration: 0.07},
		{Phoneme: phoneme.PhonER, Duration: 0.10},
		{Phoneme: phoneme.PhonL, Duration: 0.07},
		{Phoneme: phoneme.PhonD, Duration: 0.05},
	}
}

func TestFromPhonemes_HelloWorld(t *testing.T) {
	tr := FromPhonemes(helloWorld(), DefaultConfig())

	// 0.66s of phonemes plus 20ms pads on both ends.
	if math.Abs(tr.TotalDuration-0.70) > 1e-9 {
		t.Fatalf("TotalDuration = %f, want 0.70", tr.TotalDuration)
	}
	if tr.Method != MethodPhoneme {
		t.Errorf("Method = %q, want %q", tr.Method, MethodPhoneme)
	}
	if tr.RawAudio != nil {
		t.Error("fallback trajectory carries raw audio")
	}

	for _, track := range []Track{tr.Tracks.F1, tr.Tracks.F2, tr.Tracks.F3} {
		// 10ms grid over 0.70s, both endpoints included.
		if len(track) != 71 {
			t.Fatalf("track has %d points, want 71", len(track))
		}
		for i := 1; i < len(track); i++ {
			if track[i].T <= track[i-1].T {
				t.Fatalf("time not increasing at point %d: %f after %f", i, track[i].T, track[i-1].T)
			}
		}
		for i, p := range track {
			if p.Freq <= 0 {
				t.Errorf("point %d Freq = %f, want > 0", i, p.Freq)
			}
		}
		if track[0].Amp != 0 {
			t.Errorf("leading pad Amp = %f, want 0", track[0].Amp)
		}
		if last := track[len(track)-1].Amp; math.Abs(last) > 1e-9 {
			t.Errorf("trailing pad Amp = %f, want 0", last)
		}
	}

	// t=0.04 is the center of the unvoiced HH: frequencies ease through
	// its table entry but the amplitude stays zero.
	if got := tr.Tracks.F1[4].Amp; got != 0 {
		t.Errorf("Amp at HH center = %f, want 0", got)
	}

	// t=0.11 is the center of AH: the track passes through the table
	// target at full tier weight.
	ah := phoneme.PhonAH.Formants()
	wantFreq := []float64{ah.F1, ah.F2, ah.F3}
	wantAmp := []float64{1.0, 0.7, 0.4}
	for k, track := range []Track{tr.Tracks.F1, tr.Tracks.F2, tr.Tracks.F3} {
		if got := track[11].Freq; math.Abs(got-wantFreq[k]) > 1e-9 {
			t.Errorf("tier %d Freq at AH center = %f, want %f", k, got, wantFreq[k])
		}
		if got := track[11].Amp; math.Abs(got-wantAmp[k]) > 1e-9 {
			t.Errorf("tier %d Amp at AH center = %f, want %f", k, got, wantAmp[k])
		}
	}
}

func TestFromPhonemes_SingleVowel(t *testing.T) {
	tr := FromPhonemes([]phoneme.Unit{{Phoneme: phoneme.PhonAA, Duration: 0.10}}, DefaultConfig())
	if math.Abs(tr.TotalDuration-0.14) > 1e-9 {
		t.Fatalf("TotalDuration = %f, want 0.14", tr.TotalDuration)
	}
	aa := phoneme.PhonAA.Formants()
	wantFreq := []float64{aa.F1, aa.F2, aa.F3}
	wantAmp := []float64{1.0, 0.7, 0.4}
	for k, track := range []Track{tr.Tracks.F1, tr.Tracks.F2, tr.Tracks.F3} {
		// Index 7 is the vowel center at t=0.07.
		if got := track[7].Freq; math.Abs(got-wantFreq[k]) > 1e-9 {
			t.Errorf("tier %d Freq = %f, want %f", k, got, wantFreq[k])
		}
		if got := track[7].Amp; math.Abs(got-wantAmp[k]) > 1e-9 {
			t.Errorf("tier %d Amp = %f, want %f", k, got, wantAmp[k])
		}
	}
}

func TestFromPhonemes_NoUnits(t *testing.T) {
	tr := FromPhonemes(nil, DefaultConfig())
	if math.Abs(tr.TotalDuration-0.04) > 1e-12 {
		t.Fatalf("TotalDuration = %f, want 0.04", tr.TotalDuration)
	}
	wantFreq := []float64{500, 1500, 2500}
	for k, track := range []Track{tr.Tracks.F1, tr.Tracks.F2, tr.Tracks.F3} {
		if len(track) != 5 {
			t.Fatalf("track has %d points, want 5", len(track))
		}
		for i, p := range track {
			if p.Amp != 0 {
				t.Errorf("tier %d point %d Amp = %f, want 0", k, i, p.Amp)
			}
			if p.Freq != wantFreq[k] {
				t.Errorf("tier %d point %d Freq = %f, want %f", k, i, p.Freq, wantFreq[k])
			}
		}
	}
}

func TestFromPhonemes_NoPadding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EdgePad = 0
	tr := FromPhonemes(nil, cfg)
	if tr.TotalDuration != 0 {
		t.Fatalf("TotalDuration = %f, want 0", tr.TotalDuration)
	}
	if len(tr.Tracks.F1) != 1 {
		t.Fatalf("track has %d points, want 1", len(tr.Tracks.F1))
	}
	if p := tr.Tracks.F1[0]; p.T != 0 || p.Amp != 0 {
		t.Errorf("point = %+v, want zero time and amplitude", p)
	}
}
