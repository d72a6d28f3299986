package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/omath"
)

// changeVelocity applies the movement vector to the body, depending on the locomotion mode of the actor.
func (s *Simulator) changeVelocity(state *LocomotionState, body Body, movement mgl32.Vec3, jumped bool) {
	p := s.Params
	dt := s.Options.DeltaTime
	vel := body.Velocity()

	switch {
	case state.Grounded:
		if state.Crouching || movement.LenSqr() == 0 {
			return
		}
		delta := movement.Sub(vel)
		if jumped {
			delta[1] = 0
			body.AddVelocityChange(omath.Up.Mul(movement.Y()))
		}
		delta = omath.MinByAbsolute(omath.SafeNormalize(delta).Mul(p.Acceleration*dt), delta)
		body.AddVelocityChange(delta)
	case state.WallRunning:
		gravity := mgl32.Vec3{}
		if s.Env != nil {
			gravity = s.Env.Gravity()
		}
		body.SetVelocity(vel.Add(gravity.Mul(dt * p.WallRunGravityModifier)))
	case state.WallJumping:
		retained := vel.Mul(p.WallJumpVelocityRetention)
		if !p.WallJumpRetainY {
			retained[1] = 0
		}
		body.SetVelocity(movement.Add(retained))
	default:
		if omath.SafeNormalize(movement).LenSqr() == 0 {
			return
		}
		maxIncrease := math32.Max(p.SprintSpeed-omath.ScalarProjection(omath.Horizontal(vel), movement), 0)
		increase := omath.MinByAbsolute(omath.SafeNormalize(movement).Mul(maxIncrease), movement.Mul(dt))
		body.SetVelocity(vel.Add(increase))
	}
}

// applyAerialDrag removes a fraction of the horizontal velocity of an airborne actor.
func (s *Simulator) applyAerialDrag(body Body) {
	vel := body.Velocity()
	factor := 1 - s.Params.AerialDragCoefficient*s.Options.DeltaTime
	body.SetVelocity(mgl32.Vec3{vel.X() * factor, vel.Y(), vel.Z() * factor})
}
