package frogger

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

func TestGoalSlots(t *testing.T) {
	g := NewGoalSlots([]int{0, 18, 36, 54, 72}, 7)

	tests := []struct {
		col  int
		want int
	}{
		{0, -1}, // on the pod wall
		{1, 0},
		{4, 0},
		{5, -1}, // tile would overhang the pod
		{10, -1},
		{19, 1},
		{39, 2},
		{40, 2},
		{41, -1},
		{73, 4},
	}
	for _, tt := range tests {
		if got := g.Find(tt.col, 2); got != tt.want {
			t.Errorf("Find(%d) = %d, want %d", tt.col, got, tt.want)
		}
	}

	if !g.Fill(2) {
		t.Fatal("Fill(2) should succeed")
	}
	if g.Fill(2) {
		t.Error("Fill(2) twice should fail")
	}
	if g.Fill(9) || g.Fill(-1) {
		t.Error("Fill out of range should fail")
	}
	if got := g.Find(39, 2); got != -1 {
		t.Errorf("Find(39) on a full slot = %d, want -1", got)
	}
	if !g.Filled(2) || g.Filled(1) {
		t.Error("Filled reports wrong occupancy")
	}
	if g.Count() != 1 || g.Full() {
		t.Errorf("Count() = %d, Full() = %v", g.Count(), g.Full())
	}

	for i := 0; i < g.Len(); i++ {
		g.Fill(i)
	}
	if !g.Full() {
		t.Error("all slots filled, Full() should be true")
	}
}

func TestGoalSlotsChecksTheSlotTested(t *testing.T) {
	g := NewGoalSlots([]int{0, 18}, 7)
	g.Fill(0)

	// Slot 0 being full must not hide slot 1.
	if got := g.Find(19, 2); got != 1 {
		t.Errorf("Find(19) = %d, want 1", got)
	}
}

func TestMoveRulesScenario(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	rules := newMoveRules(cfg)
	p := newPlayerState(cfg)

	steps := []struct {
		action core.Action
		want   Position
		slot   int
		ok     bool
	}{
		{core.ActionLeft, Position{21, 39}, -1, true},
		{core.ActionDown, Position{21, 39}, -1, false}, // already on the start bank
		{core.ActionUp, Position{17, 39}, -1, true},
		{core.ActionUp, Position{13, 39}, -1, true},
		{core.ActionUp, Position{9, 39}, -1, true},
		{core.ActionUp, Position{5, 39}, -1, true},
		{core.ActionUp, Position{2, 39}, 2, true}, // docks into the slot at 36
	}

	pos := p.cur
	for i, s := range steps {
		to, slot, ok := rules.next(pos, p.width, p.height, s.action, &p.goals)
		if ok != s.ok || slot != s.slot || (ok && to != s.want) {
			t.Fatalf("step %d %v from %v: got (%v, %d, %v), want (%v, %d, %v)",
				i, s.action, pos, to, slot, ok, s.want, s.slot, s.ok)
		}
		if ok {
			pos = to
		}
	}
}

func TestMoveRulesBounds(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	rules := newMoveRules(cfg)
	goals := NewGoalSlots(cfg.Goals.Columns, cfg.Goals.Width)

	tests := []struct {
		name   string
		from   Position
		action core.Action
		ok     bool
	}{
		{"left at left edge", Position{21, 0}, core.ActionLeft, false},
		{"left inside", Position{21, 1}, core.ActionLeft, true},
		{"right at right edge", Position{21, 78}, core.ActionRight, false},
		{"right inside", Position{21, 77}, core.ActionRight, true},
		{"down from start bank", Position{21, 40}, core.ActionDown, false},
		{"down from river", Position{17, 40}, core.ActionDown, true},
		{"down just above bank", Position{19, 40}, core.ActionDown, false},
		{"up at upper bound", Position{8, 40}, core.ActionUp, false},
		{"up from approach without slot", Position{5, 10}, core.ActionUp, false},
		{"up from approach with slot", Position{5, 19}, core.ActionUp, true},
		{"none", Position{13, 40}, core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := rules.next(tt.from, 2, 2, tt.action, &goals)
			if ok != tt.ok {
				t.Errorf("ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}

func TestMoveRulesRejectFullSlot(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	rules := newMoveRules(cfg)
	goals := NewGoalSlots(cfg.Goals.Columns, cfg.Goals.Width)
	goals.Fill(2)

	if _, _, ok := rules.next(Position{5, 39}, 2, 2, core.ActionUp, &goals); ok {
		t.Error("docking into an occupied slot should be rejected")
	}
}
