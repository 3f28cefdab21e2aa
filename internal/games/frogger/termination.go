package frogger

import "sync"

// Outcome names how a game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeQuit
	OutcomeInterrupted
	OutcomeFailed
)

// End-of-game banners.
const (
	MsgWon         = "you're a champ"
	MsgLost        = "GAME OVER"
	MsgQuit        = "quitters never prosper"
	MsgInterrupted = "interrupted"
	MsgFailed      = "SYNCHRONIZATION FAILURE"
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	case OutcomeInterrupted:
		return "interrupted"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Termination is the single-resolution "game finished" event.
//
// The first claim wins: it sets the flag and records its outcome and message.
// Later claims are no-ops that report false. Fire releases everything waiting
// on Done; it may be called any number of times.
type Termination struct {
	mu      sync.Mutex
	ended   bool
	outcome Outcome
	message string

	fireOnce sync.Once
	done     chan struct{}
}

// NewTermination creates an unresolved event.
func NewTermination() *Termination {
	return &Termination{done: make(chan struct{})}
}

// Claim resolves the event with outcome and message if nobody did before.
func (t *Termination) Claim(outcome Outcome, message string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ended {
		return false
	}
	t.ended = true
	t.outcome = outcome
	t.message = message
	return true
}

// Fire wakes the waiters. Only meaningful after Claim.
func (t *Termination) Fire() {
	t.fireOnce.Do(func() { close(t.done) })
}

// Ended reports whether the event has been claimed.
func (t *Termination) Ended() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ended
}

// Done is closed once the event has fired.
func (t *Termination) Done() <-chan struct{} {
	return t.done
}

// Result returns the winning outcome and message.
func (t *Termination) Result() (Outcome, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.outcome, t.message
}
