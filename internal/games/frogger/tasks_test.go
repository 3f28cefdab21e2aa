package frogger

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestTaskGroupJoinAllInCreationOrder(t *testing.T) {
	g := NewTaskGroup()

	var mu sync.Mutex
	var started []string
	release := make(chan struct{})
	names := []string{"a", "b", "c"}
	for _, name := range names {
		if _, err := g.Spawn(name, func() {
			mu.Lock()
			started = append(started, name)
			mu.Unlock()
			<-release
		}); err != nil {
			t.Fatalf("Spawn(%s): %v", name, err)
		}
	}

	if got := g.Running(); got != 3 {
		t.Errorf("Running() = %d, want 3", got)
	}
	close(release)
	g.JoinAll()

	if got := g.Running(); got != 0 {
		t.Errorf("Running() after JoinAll = %d, want 0", got)
	}
	if got := g.Spawned(); got != 3 {
		t.Errorf("Spawned() = %d, want 3", got)
	}
	if len(started) != 3 {
		t.Errorf("started %d tasks, want 3", len(started))
	}
}

func TestTaskGroupJoinAllIncludesLateSpawns(t *testing.T) {
	g := NewTaskGroup()

	var ran atomic.Int32
	if _, err := g.Spawn("parent", func() {
		ran.Add(1)
		if _, err := g.Spawn("child", func() { ran.Add(1) }); err != nil {
			t.Errorf("Spawn(child): %v", err)
		}
	}); err != nil {
		t.Fatal(err)
	}

	g.JoinAll()
	if ran.Load() != 2 {
		t.Errorf("ran = %d, want 2", ran.Load())
	}
	if g.Running() != 0 {
		t.Errorf("Running() = %d, want 0", g.Running())
	}
}

func TestTaskGroupClosedAfterJoinAll(t *testing.T) {
	g := NewTaskGroup()
	g.JoinAll()

	if _, err := g.Spawn("late", func() {}); !errors.Is(err, ErrGroupClosed) {
		t.Errorf("Spawn after JoinAll: got %v, want ErrGroupClosed", err)
	}
	if _, err := g.Launch("late", func() {}); !errors.Is(err, ErrGroupClosed) {
		t.Errorf("Launch after JoinAll: got %v, want ErrGroupClosed", err)
	}
}

func TestTaskGroupLimit(t *testing.T) {
	g := NewTaskGroup(WithMaxTasks(2))
	block := make(chan struct{})

	for i := 0; i < 2; i++ {
		if _, err := g.Spawn("worker", func() { <-block }); err != nil {
			t.Fatalf("Spawn %d: %v", i, err)
		}
	}
	if _, err := g.Spawn("overflow", func() {}); !errors.Is(err, ErrTaskLimit) {
		t.Errorf("third Spawn: got %v, want ErrTaskLimit", err)
	}

	close(block)
	g.JoinAll()
}

func TestTaskGroupLaunchJoin(t *testing.T) {
	g := NewTaskGroup()

	task, err := g.Launch("owned", func() {})
	if err != nil {
		t.Fatal(err)
	}
	g.Join(task)
	g.Join(task) // second join is a no-op

	if !task.Exited() {
		t.Error("task should have exited")
	}
	if got := g.Running(); got != 0 {
		t.Errorf("Running() = %d, want 0", got)
	}

	// Launched tasks are not tracked by JoinAll.
	g.JoinAll()
	if got := g.Spawned(); got != 0 {
		t.Errorf("Spawned() = %d, want 0", got)
	}
}

func TestTaskGroupRecoversPanics(t *testing.T) {
	var got any
	var name string
	g := NewTaskGroup(WithPanicHandler(func(task *Task, v any) {
		name = task.Name
		got = v
	}))

	if _, err := g.Spawn("boom", func() { panic("kaboom") }); err != nil {
		t.Fatal(err)
	}
	g.JoinAll()

	if got != "kaboom" || name != "boom" {
		t.Errorf("panic handler got (%q, %v), want (boom, kaboom)", name, got)
	}
	if g.Running() != 0 {
		t.Errorf("Running() = %d, want 0", g.Running())
	}
}
