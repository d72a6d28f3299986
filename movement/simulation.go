package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/omath"
)

// Simulate runs a single movement tick for the actor owning state and body, and returns the resulting state. The
// contacts are those the physics substrate reported since the previous tick.
func (s *Simulator) Simulate(state *LocomotionState, body Body, contacts ContactProvider, input InputState) SimulationResult {
	if state == nil || body == nil {
		return SimulationResult{}
	}

	var res SimulationResult
	s.latchJump(state, input)

	state.TimeSinceLastJump += s.Options.DeltaTime
	state.WallJumping = false

	res.Friction = s.updateCollisionState(state, body, contacts, input)
	s.move(state, body, input, &res)

	res.Velocity = body.Velocity()
	res.Mode = state.Mode()
	res.Grounded = state.Grounded
	res.OnWall = state.OnWall
	res.WallRunning = state.WallRunning
	res.WallJumping = state.WallJumping
	res.Crouching = state.Crouching
	return res
}

// latchJump sets the jump latch on a press edge, either reported by the input layer or observed between the
// previous and current jump level.
func (s *Simulator) latchJump(state *LocomotionState, input InputState) {
	if input.JumpPressed || (input.Jump && !state.JumpHeld) {
		state.JumpRequested = true
	}
	state.JumpHeld = input.Jump
}

// move runs the velocity integrator for the tick, after collision state has been classified.
func (s *Simulator) move(state *LocomotionState, body Body, input InputState, res *SimulationResult) {
	p := s.Params
	if state.WallRunning && (!state.OnWall || state.Grounded) {
		reason := WallRunEndLeftWall
		if state.Grounded {
			reason = WallRunEndGrounded
		}
		s.endWallRun(state, body, reason, res)
	}

	movement := s.candidateDirection(state, input)
	if state.Grounded {
		movement = omath.ProjectOnPlane(movement, state.GroundNormal)
		state.forgetLastWallRun()
	} else if state.OnWall {
		s.updateWallRun(state, body, movement, input, res)
	} else {
		movement = movement.Mul(p.AirSpeedMultiplier)
		s.applyAerialDrag(body)
	}

	speed := p.Speed
	if input.Sprint && omath.Angle(movement, state.Look.Forward()) < p.SprintAngleLimit && (state.Grounded || p.CanSprintInAir) {
		speed = p.SprintSpeed
	}
	movement = movement.Mul(speed)

	jumped := false
	if state.JumpRequested && state.OnSurface() {
		movement, jumped = s.resolveJump(state, body, movement, res)
	}
	state.JumpRequested = false
	res.Jumped = jumped

	state.Crouching = input.Crouch && state.Grounded
	s.changeVelocity(state, body, movement, jumped)
}

// candidateDirection turns the 2-axis move input into a unit movement direction. While wall running with velocity
// aligned input, the direction is left in the input's local frame.
func (s *Simulator) candidateDirection(state *LocomotionState, input InputState) mgl32.Vec3 {
	local := mgl32.Vec3{input.Move.X(), 0, input.Move.Y()}
	if state.WallRunning && s.Params.IsInputOnWallVelocityAligned {
		return omath.SafeNormalize(local)
	}

	world := omath.YawRight(state.Look.Yaw).Mul(local.X()).Add(omath.YawForward(state.Look.Yaw).Mul(local.Z()))
	return omath.SafeNormalize(world)
}
