package daemon

import (
	"math"
	"testing"
	"time"
)

func TestDiffSnapshots(t *testing.T) {
	prev := Snapshot{
		Expenses:        3,
		TotalExpenses:   120000,
		Income:          300000,
		ProgressPercent: 40,
	}
	curr := Snapshot{
		Expenses:        5,
		TotalExpenses:   170000,
		Income:          300000,
		ProgressPercent: 56.67,
	}

	delta := diffSnapshots(prev, curr)
	if delta.Expenses != 2 {
		t.Fatalf("Expenses delta = %d, want 2", delta.Expenses)
	}
	if delta.TotalExpenses != 50000 {
		t.Fatalf("TotalExpenses delta = %d, want 50000", delta.TotalExpenses)
	}
	if delta.Income != 0 {
		t.Fatalf("Income delta = %d, want 0", delta.Income)
	}
	if math.Abs(delta.Progress-16.67) > 1e-9 {
		t.Fatalf("Progress delta = %.2f, want 16.67", delta.Progress)
	}
	if delta.isZero() {
		t.Fatal("delta unexpectedly reported as zero")
	}
}

func TestCrossedThreshold(t *testing.T) {
	cases := []struct {
		name string
		prev float64
		curr float64
		want string
	}{
		{"below both", 10, 50, ""},
		{"crosses warn", 60, 75, "budget_warning"},
		{"already above warn", 75, 80, ""},
		{"crosses critical", 85, 95, "budget_critical"},
		{"jumps past both", 50, 100, "budget_critical"},
		{"drops back", 95, 50, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := crossedThreshold(tc.prev, tc.curr); got != tc.want {
				t.Errorf("crossedThreshold(%v, %v) = %q, want %q", tc.prev, tc.curr, got, tc.want)
			}
		})
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{
		DBPath:       "state.db",
		Interval:     10 * time.Second,
		EventsBuffer: 2,
	})

	s.publishEvent(Event{ID: 1})
	s.publishEvent(Event{ID: 2})
	s.publishEvent(Event{ID: 3})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
}
