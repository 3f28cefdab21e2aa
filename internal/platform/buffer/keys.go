package buffer

import (
	"time"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// KeyQueue is an input source fed by a backend's event loop (or by tests).
type KeyQueue struct {
	ch chan core.Action
}

// NewKeyQueue creates a queue holding at most size pending actions.
func NewKeyQueue(size int) *KeyQueue {
	if size < 1 {
		size = 1
	}
	return &KeyQueue{ch: make(chan core.Action, size)}
}

// Push enqueues an action without blocking. It reports false and drops the
// action when the queue is full, the same as a key lost by a busy terminal.
func (q *KeyQueue) Push(a core.Action) bool {
	select {
	case q.ch <- a:
		return true
	default:
		return false
	}
}

// PollKey waits at most timeout for an action. ok is false on timeout.
func (q *KeyQueue) PollKey(timeout time.Duration) (a core.Action, ok bool) {
	select {
	case a = <-q.ch:
		return a, true
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case a = <-q.ch:
		return a, true
	case <-timer.C:
		return core.ActionNone, false
	}
}
