package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/omath"
)

// updateCollisionState classifies the contacts of the tick into ground and wall contacts, probes for ground
// beneath the actor if it is only touching a wall, then updates the body's friction and the grounded timer.
func (s *Simulator) updateCollisionState(state *LocomotionState, body Body, contacts ContactProvider, input InputState) float32 {
	p := s.Params
	state.Grounded, state.OnWall = false, false
	state.GroundNormal, state.WallNormal = mgl32.Vec3{}, mgl32.Vec3{}
	state.WallSurface = NoSurface

	var list []Contact
	if contacts != nil {
		list = contacts.Contacts()
	}
	for _, c := range list {
		angle := omath.Angle(omath.Up, c.Normal)
		if angle < p.GroundAngleLimit && state.TimeSinceLastJump > p.JumpMinAirTime {
			state.Grounded = true
			state.GroundNormal = c.Normal
		} else if angle <= WallContactMaxAngle && angle > p.GroundAngleLimit {
			state.OnWall = true
			state.WallNormal = c.Normal
			state.WallSurface = c.Surface
		}
	}

	if state.OnWall && !state.Grounded {
		s.probeGround(state, body)
	}

	// Friction ramps from the time spent grounded before this tick.
	friction := s.updateFriction(state, body, input)
	if state.Grounded {
		state.TimeSinceGrounded += s.Options.DeltaTime
	} else {
		state.TimeSinceGrounded = 0
	}
	return friction
}

// probeGround casts a short ray down from the centre of the body, so that an actor pressed against a wall while
// standing on ground it has no reported contact with is still grounded.
func (s *Simulator) probeGround(state *LocomotionState, body Body) {
	if s.Env == nil {
		return
	}
	bb := body.Bounds()
	centre := bb.Min().Add(bb.Max()).Mul(0.5)
	halfHeight := (bb.Max().Y() - bb.Min().Y()) / 2

	hit, ok := s.Env.Raycast(centre, omath.Down, s.Params.GroundedThreshold+halfHeight)
	if !ok || omath.Angle(omath.Up, hit.Normal) >= s.Params.GroundAngleLimit {
		return
	}
	state.Grounded = true
	state.GroundNormal = hit.Normal
}
