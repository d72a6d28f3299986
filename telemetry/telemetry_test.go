package telemetry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/movement"
)

func TestReadout(t *testing.T) {
	r := ReadoutOf(mgl32.Vec3{3, 4, 12})
	if r.Speed != 13 || r.HorizontalSpeed != 5 {
		t.Fatalf("expected 13 (5), got %+v", r)
	}
	r = ReadoutOf(mgl32.Vec3{0.26, 0, 0})
	if r.Speed != 0.3 {
		t.Fatalf("expected rounding to one decimal, got %v", r.Speed)
	}
	if s := ReadoutOf(mgl32.Vec3{3, 4, 12}).String(); s != "Speed: 13.0 (5.0)" {
		t.Fatalf("unexpected readout string %q", s)
	}
}

func TestSampleOf(t *testing.T) {
	s := SampleOf(7, movement.SimulationResult{Velocity: mgl32.Vec3{0, 0, 4}, Mode: movement.ModeGrounded})
	if s.Tick != 7 || s.Readout.Speed != 4 || s.Mode != movement.ModeGrounded {
		t.Fatalf("unexpected sample %+v", s)
	}
}

func TestHistoryDropsOldest(t *testing.T) {
	h := NewHistory[int](3)
	if _, ok := h.Latest(); ok {
		t.Fatalf("expected empty history to have no latest item")
	}
	for i := 1; i <= 5; i++ {
		if err := h.Append(i); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if h.Len() != 3 || h.Cap() != 3 {
		t.Fatalf("expected len and cap 3, got %d and %d", h.Len(), h.Cap())
	}

	var got []int
	for v := range h.All() {
		got = append(got, v)
	}
	if len(got) != 3 || got[0] != 3 || got[2] != 5 {
		t.Fatalf("expected [3 4 5], got %v", got)
	}
	if v, _ := h.Get(1); v != 4 {
		t.Fatalf("expected 4, got %v", v)
	}
	if v, ok := h.Latest(); !ok || v != 5 {
		t.Fatalf("expected latest 5, got %v", v)
	}
	if _, err := h.Get(3); err == nil {
		t.Fatalf("expected out of range error")
	}

	h.Reset()
	if h.Len() != 0 {
		t.Fatalf("expected reset history to be empty")
	}
}

func TestZeroCapacityHistory(t *testing.T) {
	if err := NewHistory[int](0).Append(1); err == nil {
		t.Fatalf("expected append on zero capacity to fail")
	}
}
