// Package sinewave extracts three-formant trajectories from speech.
// The LPC path analyzes a real waveform; when no waveform can be had,
// a phoneme-mapping fallback derives the trajectory from the text
// itself. Either way a generate request yields exactly one trajectory,
// tagged with the method that produced it.
package sinewave

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iso226/sinewave-go/audio"
	"github.com/iso226/sinewave-go/lexicon"
	"github.com/iso226/sinewave-go/lpc"
	"github.com/iso226/sinewave-go/trajectory"
)

// WaveformSource produces a spoken waveform for a line of text. It must
// respect the context deadline; the player treats any failure as a
// reason to fall back, never as a request failure.
type WaveformSource interface {
	Synthesize(ctx context.Context, text string) (*audio.Clip, error)
}

// Config collects the tunables of a Player.
type Config struct {
	LPC           lpc.Config
	Trajectory    trajectory.Config
	SourceTimeout time.Duration // cap on one waveform-source call; 0 means no cap
}

// DefaultConfig returns the parameters the engine ships with.
func DefaultConfig() Config {
	return Config{
		LPC:           lpc.DefaultConfig(),
		Trajectory:    trajectory.DefaultConfig(),
		SourceTimeout: 10 * time.Second,
	}
}

// Player is the extraction orchestrator. A player is safe for
// concurrent use; when requests overlap, the newest wins and the older
// ones return ErrSuperseded.
type Player struct {
	Source WaveformSource // optional; nil routes every request to the fallback
	Dict   *lexicon.Dictionary
	Cfg    Config

	log func(format string, args ...any)

	mu      sync.Mutex
	state   State
	gen     uuid.UUID
	lastErr error
}

// Option configures a Player.
type Option func(*Player)

// WithSource attaches a waveform source for the LPC path.
func WithSource(src WaveformSource) Option {
	return func(p *Player) {
		p.Source = src
	}
}

// WithDictionary replaces the built-in pronunciation dictionary. A nil
// dictionary leaves only the letter rules.
func WithDictionary(d *lexicon.Dictionary) Option {
	return func(p *Player) {
		p.Dict = d
	}
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(p *Player) {
		p.Cfg = cfg
	}
}

// WithLogger directs fallback diagnostics to logf. The player stays
// quiet without one.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(p *Player) {
		p.log = logf
	}
}

// NewPlayer creates a Player with the built-in dictionary and default
// configuration.
func NewPlayer(opts ...Option) *Player {
	p := &Player{
		Dict: lexicon.Default(),
		Cfg:  DefaultConfig(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State reports where the player is in its request lifecycle.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// LastError reports why the most recent request fell back or failed,
// nil when it took the LPC path or fell back by choice.
func (p *Player) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// Generate produces a trajectory for text. With a waveform source the
// player speaks the text and analyzes the result; a source failure,
// timeout, or analysis failure falls back to phoneme mapping with the
// same text. Without a source it goes straight to phoneme mapping.
// Only empty text fails; no analysis fault escapes.
func (p *Player) Generate(ctx context.Context, text string) (*trajectory.Trajectory, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	id := p.begin()

	if p.Source == nil {
		return p.finish(id, p.fallbackTrajectory(text), StateFellBack, nil)
	}

	srcCtx := ctx
	if p.Cfg.SourceTimeout > 0 {
		var cancel context.CancelFunc
		srcCtx, cancel = context.WithTimeout(ctx, p.Cfg.SourceTimeout)
		defer cancel()
	}
	clip, err := p.Source.Synthesize(srcCtx, text)
	if err != nil {
		err = fmt.Errorf("waveform source: %w", err)
		p.logf("falling back to phoneme mapping: %v", err)
		return p.finish(id, p.fallbackTrajectory(text), StateFellBack, err)
	}
	if !p.current(id) {
		return nil, ErrSuperseded
	}

	tr, err := p.analyze(clip)
	if err != nil {
		p.logf("falling back to phoneme mapping: %v", err)
		return p.finish(id, p.fallbackTrajectory(text), StateFellBack, err)
	}
	return p.finish(id, tr, StateSucceeded, nil)
}

// GenerateFromBuffer analyzes a caller-supplied waveform. On analysis
// failure it falls back to phoneme mapping when text is non-empty;
// with empty text there is nothing to map, so the analysis error is
// returned instead.
func (p *Player) GenerateFromBuffer(text string, clip *audio.Clip) (*trajectory.Trajectory, error) {
	hasText := strings.TrimSpace(text) != ""
	if !hasText && (clip == nil || len(clip.Samples) == 0) {
		return nil, ErrEmptyInput
	}
	id := p.begin()

	tr, err := p.analyze(clip)
	if err != nil {
		if !hasText {
			return nil, p.abort(id, err)
		}
		p.logf("falling back to phoneme mapping: %v", err)
		return p.finish(id, p.fallbackTrajectory(text), StateFellBack, err)
	}
	return p.finish(id, tr, StateSucceeded, nil)
}

// GenerateFromFile analyzes a WAV file, with the same fallback rules as
// GenerateFromBuffer.
func (p *Player) GenerateFromFile(text, wavPath string) (*trajectory.Trajectory, error) {
	clip, err := audio.ReadWAVFile(wavPath)
	if err != nil {
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("read waveform: %w", err)
		}
		id := p.begin()
		err = fmt.Errorf("read waveform: %w", err)
		p.logf("falling back to phoneme mapping: %v", err)
		return p.finish(id, p.fallbackTrajectory(text), StateFellBack, err)
	}
	return p.GenerateFromBuffer(text, clip)
}

// begin claims the player for a new request and invalidates any request
// still in flight.
func (p *Player) begin() uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen = uuid.New()
	p.state = StateAnalyzing
	p.lastErr = nil
	return p.gen
}

func (p *Player) current(id uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gen == id
}

// finish publishes a request's outcome unless a newer request has taken
// the player, in which case the stale result is discarded untouched.
func (p *Player) finish(id uuid.UUID, tr *trajectory.Trajectory, st State, reason error) (*trajectory.Trajectory, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen != id {
		return nil, ErrSuperseded
	}
	p.state = st
	p.lastErr = reason
	return tr, nil
}

// abort surfaces an analysis error for a request with no fallback
// material, returning the player to idle.
func (p *Player) abort(id uuid.UUID, reason error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen != id {
		return ErrSuperseded
	}
	p.state = StateIdle
	p.lastErr = reason
	return reason
}

// analyze runs the LPC path over a clip. A panic anywhere in the
// numeric kernels is recovered here and reported as a plain analysis
// error, so the caller can fall back.
func (p *Player) analyze(clip *audio.Clip) (tr *trajectory.Trajectory, err error) {
	defer func() {
		if r := recover(); r != nil {
			tr, err = nil, fmt.Errorf("analysis panic: %v", r)
		}
	}()

	if clip == nil || len(clip.Samples) == 0 {
		return nil, errors.New("empty waveform")
	}
	resampled := audio.Resample(clip, p.Cfg.LPC.SampleRate)
	if resampled == nil {
		return nil, fmt.Errorf("cannot resample %d Hz clip to %d Hz", clip.Rate, p.Cfg.LPC.SampleRate)
	}

	frames, err := lpc.Extract(resampled.Samples, p.Cfg.LPC)
	if err != nil {
		return nil, err
	}

	sm := trajectory.NewSmoother(p.Cfg.Trajectory)
	for _, f := range frames {
		sm.Add(f.Time, f.Formants)
	}
	tracks, err := sm.Finish()
	if err != nil {
		return nil, err
	}

	return &trajectory.Trajectory{
		TotalDuration: resampled.Duration(),
		Tracks:        tracks,
		RawAudio: &trajectory.RawAudio{
			Samples:    resampled.Samples,
			SampleRate: resampled.Rate,
		},
		Method: trajectory.MethodLPC,
	}, nil
}

func (p *Player) fallbackTrajectory(text string) *trajectory.Trajectory {
	units := lexicon.TextToPhonemes(text, p.Dict)
	return trajectory.FromPhonemes(units, p.Cfg.Trajectory)
}

func (p *Player) logf(format string, args ...any) {
	if p.log != nil {
		p.log(format, args...)
	}
}
