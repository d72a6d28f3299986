package world

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/movement"
	"github.com/oomph-ac/parkour/omath"
)

const dt = 0.02

func newTestWorld() (*World, Box, Box) {
	w := New(nil)
	floor := w.AddBox("floor", cube.Box(-10, -1, -10, 10, 0, 10))
	wall := w.AddBox("wall", cube.Box(1, 0, -10, 2, 5, 10))
	return w, floor, wall
}

func hasContact(contacts []movement.Contact, normal mgl32.Vec3, surface movement.SurfaceID) bool {
	for _, c := range contacts {
		if c.Normal == normal && c.Surface == surface {
			return true
		}
	}
	return false
}

func TestSurfaceID(t *testing.T) {
	if SurfaceID("floor") != SurfaceID("floor") {
		t.Fatalf("expected surface ids to be stable")
	}
	if SurfaceID("floor") == SurfaceID("wall") {
		t.Fatalf("expected different names to have different surface ids")
	}
	if SurfaceID("") == movement.NoSurface {
		t.Fatalf("expected surface id to never be NoSurface")
	}
}

func TestClipAxis(t *testing.T) {
	stationary := cube.Box(0, 0, 0, 1, 1, 1)
	moving := cube.Box(0.25, 1.5, 0.25, 0.75, 2.5, 0.75)

	res := clipAxis(stationary, moving, 1, -2)
	if math32.Abs(res.move+0.5) > 1e-6 || !res.blocked {
		t.Fatalf("expected movement to be clipped to -0.5, got %+v", res)
	}
	res = clipAxis(stationary, moving, 1, -0.25)
	if res.move != -0.25 || res.blocked {
		t.Fatalf("expected short movement to be left alone, got %+v", res)
	}
	res = clipAxis(stationary, moving, 1, 1)
	if res.move != 1 || res.blocked {
		t.Fatalf("expected movement away from the box to be left alone, got %+v", res)
	}

	resting := cube.Box(0.25, 1, 0.25, 0.75, 2, 0.75)
	if res = clipAxis(stationary, resting, 1, -0.1); res.move != 0 || !res.blocked {
		t.Fatalf("expected a resting box to be blocked without moving, got %+v", res)
	}
	if res = clipAxis(stationary, resting, 0, 2); res.move != 2 || res.blocked {
		t.Fatalf("expected a box resting on top to slide freely, got %+v", res)
	}

	overlapping := cube.Box(0.25, 0.9, 0.25, 0.75, 1.9, 0.75)
	res = clipAxis(stationary, overlapping, 1, 0)
	if math32.Abs(res.move-0.1) > 1e-5 || !res.blocked || math32.Abs(res.penetration-0.1) > 1e-5 {
		t.Fatalf("expected overlapping box to be pushed up and out, got %+v", res)
	}
	if res = clipAxis(stationary, overlapping, 0, 0); res.move != 0 || res.blocked {
		t.Fatalf("expected overlap to be resolved along the shallowest axis only, got %+v", res)
	}
}

func TestStepStopsVelocityOnlyOnBlockedAxes(t *testing.T) {
	w, _, _ := newTestWorld()
	b := NewBody(mgl32.Vec3{0, 0, 0}, 0.8, 2)
	b.SetUseGravity(false)
	b.SetVelocity(mgl32.Vec3{1, -1, 0})

	w.Step(b, dt)
	if b.Velocity().Y() != 0 {
		t.Fatalf("expected the floor to stop vertical velocity, got %v", b.Velocity())
	}
	if b.Velocity().X() == 0 {
		t.Fatalf("expected horizontal velocity to survive, got %v", b.Velocity())
	}
}

func TestBodyLandsOnFloor(t *testing.T) {
	w, floor, _ := newTestWorld()
	b := NewBody(mgl32.Vec3{0, 1, 0}, 0.8, 2)

	for i := 0; i < 100; i++ {
		w.Step(b, dt)
	}
	if math32.Abs(b.Position().Y()) > 1e-4 {
		t.Fatalf("expected body to rest on the floor, got %v", b.Position())
	}
	if b.Velocity().Y() != 0 {
		t.Fatalf("expected landing to stop vertical velocity, got %v", b.Velocity())
	}
	if !hasContact(b.Contacts(), omath.Up, floor.Surface) {
		t.Fatalf("expected a floor contact, got %v", b.Contacts())
	}
}

func TestWallContactAndClipping(t *testing.T) {
	w, _, wall := newTestWorld()
	b := NewBody(mgl32.Vec3{0, 0, 0}, 0.8, 2)
	b.SetVelocity(mgl32.Vec3{10, 0, 0})

	for i := 0; i < 10; i++ {
		w.Step(b, dt)
	}
	if b.Bounds().Max().X() > 1+1e-4 {
		t.Fatalf("expected body to be stopped by the wall, got %v", b.Bounds())
	}
	if b.Velocity().X() != 0 {
		t.Fatalf("expected wall to stop horizontal velocity, got %v", b.Velocity())
	}
	if !hasContact(b.Contacts(), mgl32.Vec3{-1, 0, 0}, wall.Surface) {
		t.Fatalf("expected a wall contact, got %v", b.Contacts())
	}
}

func TestFriction(t *testing.T) {
	w, _, _ := newTestWorld()
	b := NewBody(mgl32.Vec3{-5, 0, 0}, 0.8, 2)
	w.Step(b, dt)

	b.SetVelocity(mgl32.Vec3{5, 0, 0})
	b.SetFriction(10)
	w.Step(b, dt)
	want := 5 - 10*9.81*float32(dt)
	if math32.Abs(b.Velocity().X()-want) > 1e-3 {
		t.Fatalf("expected friction to slow the body to %v, got %v", want, b.Velocity())
	}

	for i := 0; i < 10; i++ {
		w.Step(b, dt)
	}
	if b.Velocity().X() != 0 {
		t.Fatalf("expected friction to stop the body without reversing it, got %v", b.Velocity())
	}
}

func TestGravityToggle(t *testing.T) {
	w := New(nil)
	b := NewBody(mgl32.Vec3{0, 10, 0}, 0.8, 2)
	b.SetUseGravity(false)
	b.SetVelocity(mgl32.Vec3{0, 1, 0})
	w.Step(b, dt)
	if b.Velocity() != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("expected velocity to be unchanged without gravity, got %v", b.Velocity())
	}

	w.SetGravity(mgl32.Vec3{0, -20, 0})
	b.SetUseGravity(true)
	w.Step(b, dt)
	if math32.Abs(b.Velocity().Y()-(1-20*float32(dt))) > 1e-5 {
		t.Fatalf("expected updated gravity to apply, got %v", b.Velocity())
	}
}

func TestRaycast(t *testing.T) {
	w, floor, _ := newTestWorld()

	hit, ok := w.Raycast(mgl32.Vec3{0, 1, 0}, omath.Down, 2)
	if !ok {
		t.Fatalf("expected ray to hit the floor")
	}
	if hit.Surface != floor.Surface || hit.Normal != omath.Up || math32.Abs(hit.Distance-1) > 1e-5 {
		t.Fatalf("unexpected hit %+v", hit)
	}
	if _, ok := w.Raycast(mgl32.Vec3{0, 1, 0}, omath.Down, 0.5); ok {
		t.Fatalf("expected ray to fall short of the floor")
	}
}
