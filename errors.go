package sinewave

import "errors"

var (
	// ErrEmptyInput rejects a generate request with no text and no
	// waveform to work from.
	ErrEmptyInput = errors.New("sinewave: empty input")

	// ErrSuperseded is returned to a request that lost its player to a
	// newer request while it was still running. The newer request's
	// result stands; the stale one is discarded.
	ErrSuperseded = errors.New("sinewave: request superseded")
)
