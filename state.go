package sinewave

// State reports where a player is in its request lifecycle.
type State int

const (
	// StateIdle means no request has run yet.
	StateIdle State = iota
	// StateAnalyzing means a request is in flight.
	StateAnalyzing
	// StateSucceeded means the last request produced an LPC trajectory.
	StateSucceeded
	// StateFellBack means the last request produced a phoneme-mapping
	// trajectory, either by choice (no source) or after a failure.
	StateFellBack
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnalyzing:
		return "analyzing"
	case StateSucceeded:
		return "succeeded"
	case StateFellBack:
		return "fell-back"
	default:
		return "unknown"
	}
}
