package curve

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestEndpointsAreExact(t *testing.T) {
	for _, interp := range []Interpolation{InterpolationLinear, InterpolationMonotone} {
		c, err := New(interp, Point{0, 12.5}, Point{0.4, 30}, Point{0.7, 31}, Point{1, 75})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v := c.Evaluate(0); v != 12.5 {
			t.Fatalf("%s: expected Evaluate(0) to be exactly 12.5, got %v", interp, v)
		}
		if v := c.Evaluate(1); v != 75 {
			t.Fatalf("%s: expected Evaluate(1) to be exactly 75, got %v", interp, v)
		}
		if v := c.Evaluate(0.4); v != 30 {
			t.Fatalf("%s: expected interior control point to be exact, got %v", interp, v)
		}
	}
}

func TestOutsideDomainClampsToEndpoints(t *testing.T) {
	c := Linear(-10, 10)
	if v := c.Evaluate(-3); v != -10 {
		t.Fatalf("expected -10, got %v", v)
	}
	if v := c.Evaluate(7); v != 10 {
		t.Fatalf("expected 10, got %v", v)
	}
	if v := c.Evaluate(0.25); math32.Abs(v+5) > 1e-5 {
		t.Fatalf("expected -5, got %v", v)
	}
}

func TestMonotoneDoesNotOvershoot(t *testing.T) {
	c, err := New(InterpolationMonotone, Point{0, 0}, Point{0.1, 50}, Point{0.2, 51}, Point{1, 52})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prev := c.Evaluate(0)
	for i := 1; i <= 100; i++ {
		v := c.Evaluate(float32(i) / 100)
		if v < prev-1e-4 {
			t.Fatalf("curve decreased at t=%v: %v < %v", float32(i)/100, v, prev)
		}
		if v > 52+1e-4 {
			t.Fatalf("curve overshot its last control point at t=%v: %v", float32(i)/100, v)
		}
		prev = v
	}
}

func TestValidate(t *testing.T) {
	if _, err := New(InterpolationLinear); err == nil {
		t.Fatalf("expected error for a curve without points")
	}
	if _, err := New(InterpolationLinear, Point{0, 0}, Point{0, 1}); err == nil {
		t.Fatalf("expected error for non-increasing inputs")
	}
	if _, err := New("bezier", Point{0, 0}); err == nil {
		t.Fatalf("expected error for unknown interpolation")
	}
}

func TestEmptyCurve(t *testing.T) {
	if v := (Curve{}).Evaluate(0.5); v != 0 {
		t.Fatalf("expected empty curve to evaluate to 0, got %v", v)
	}
}
