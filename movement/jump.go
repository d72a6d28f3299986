package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/omath"
)

// resolveJump turns the movement vector into a jump vector if the actor can jump from its current surface. A jump
// from a wall ends the wall run. If the actor cannot jump, movement is returned unchanged.
func (s *Simulator) resolveJump(state *LocomotionState, body Body, movement mgl32.Vec3, res *SimulationResult) (mgl32.Vec3, bool) {
	p := s.Params
	if state.Grounded {
		state.TimeSinceLastJump = 0
		s.log().Debug("jumped", "from", "ground")
		return mgl32.Vec3{movement.X(), p.JumpForce, movement.Z()}, true
	}
	if !state.WallRunning {
		return movement, false
	}

	state.TimeSinceLastJump = 0
	var jump mgl32.Vec3
	if p.WallJumpInLookDirection {
		jump = s.lookWallJump(state, body)
	} else {
		jump = s.absoluteWallJump(state, body)
	}
	state.WallJumping = true
	s.endWallRun(state, body, WallRunEndWallJump, res)
	s.log().Debug("jumped", "from", "wall", "vector", jump)
	return jump, true
}

// absoluteWallJump pushes the actor away from the wall and upwards, with a forward component that fades out as
// the actor's horizontal speed approaches the jump force. The result always has a length of
// JumpForce * WallJumpModifier.
func (s *Simulator) absoluteWallJump(state *LocomotionState, body Body) mgl32.Vec3 {
	p := s.Params
	horizontalSpeed := omath.Horizontal(body.Velocity()).Len()
	forwardForce := math32.Max(p.JumpForce-horizontalSpeed, 0)

	var forward mgl32.Vec3
	if p.JumpForce != 0 {
		forward = state.Look.Forward().Mul(forwardForce / p.JumpForce)
	}
	dir := omath.SafeNormalize(forward.Add(state.WallNormal.Add(omath.Up)))
	return dir.Mul(p.JumpForce * p.WallJumpModifier)
}

// lookWallJump jumps in the direction the actor is looking, expressed relative to its horizontal velocity. The
// azimuth is clamped to point away from the wall and the altitude is remapped through the wall jump angle curve.
func (s *Simulator) lookWallJump(state *LocomotionState, body Body) mgl32.Vec3 {
	p := s.Params
	toWorld := velocityFrame(body.Velocity(), state.Look.Forward())
	local := toWorld.Transpose().Mul3x1(state.Look.Direction())

	wallDir := omath.Sign(-omath.SignedAngle(state.WallRunForward, state.WallNormal, state.WallRunUp))
	azimuth := mgl32.RadToDeg(math32.Atan2(local.X(), local.Z()))
	altitude := mgl32.RadToDeg(math32.Asin(omath.Clamp(local.Y(), -1, 1)))

	azimuth = omath.Clamp(azimuth*wallDir, WallJumpAzimuthMin, WallJumpAzimuthMax) * wallDir
	altitude = omath.Clamp(altitude, WallJumpAltitudeMin, WallJumpAltitudeMax)
	t := omath.Clamp(omath.Remap(altitude, WallJumpAltitudeMin, WallJumpAltitudeMax, 0, 1), 0, 1)
	altitude = p.WallJumpAngleCurve.Evaluate(t)

	az, alt := mgl32.DegToRad(azimuth), mgl32.DegToRad(altitude)
	dir := mgl32.Vec3{
		math32.Cos(alt) * math32.Sin(az),
		math32.Sin(alt),
		math32.Cos(alt) * math32.Cos(az),
	}
	return toWorld.Mul3x1(dir).Mul(p.WallJumpModifier * p.JumpForce)
}

// velocityFrame returns the rotation whose forward axis is the horizontal velocity direction, falling back to the
// given forward direction if the actor has no horizontal velocity.
func velocityFrame(vel, fallback mgl32.Vec3) mgl32.Mat3 {
	forward := omath.SafeNormalize(omath.Horizontal(vel))
	if forward.LenSqr() == 0 {
		forward = fallback
	}
	right := omath.Up.Cross(forward)
	return mgl32.Mat3FromCols(right, omath.Up, forward)
}
