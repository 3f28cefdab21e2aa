package frogger

import (
	"sync"
	"testing"
)

func TestTerminationFirstClaimWins(t *testing.T) {
	term := NewTermination()

	if term.Ended() {
		t.Fatal("new termination should not be ended")
	}
	if !term.Claim(OutcomeWon, MsgWon) {
		t.Fatal("first Claim should win")
	}
	if term.Claim(OutcomeLost, MsgLost) {
		t.Error("second Claim should lose")
	}

	outcome, msg := term.Result()
	if outcome != OutcomeWon || msg != MsgWon {
		t.Errorf("Result() = (%v, %q), want (won, %q)", outcome, msg, MsgWon)
	}
}

func TestTerminationConcurrentClaims(t *testing.T) {
	term := NewTermination()
	outcomes := []Outcome{OutcomeWon, OutcomeLost, OutcomeQuit, OutcomeInterrupted}

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(o Outcome) {
			defer wg.Done()
			if term.Claim(o, o.String()) {
				mu.Lock()
				winners++
				mu.Unlock()
			}
			term.Fire()
		}(outcomes[i%len(outcomes)])
	}
	wg.Wait()

	if winners != 1 {
		t.Errorf("winners = %d, want 1", winners)
	}
	outcome, msg := term.Result()
	if outcome.String() != msg {
		t.Errorf("outcome %v recorded with message %q from another claim", outcome, msg)
	}

	select {
	case <-term.Done():
	default:
		t.Error("Done() should be closed after Fire")
	}
}

func TestTerminationFireIdempotent(t *testing.T) {
	term := NewTermination()
	term.Claim(OutcomeQuit, MsgQuit)
	term.Fire()
	term.Fire()

	<-term.Done()
	if !term.Ended() {
		t.Error("Ended() = false after Claim")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeNone, "none"},
		{OutcomeWon, "won"},
		{OutcomeLost, "lost"},
		{OutcomeQuit, "quit"},
		{OutcomeInterrupted, "interrupted"},
		{OutcomeFailed, "failed"},
		{Outcome(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}
