package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/omath"
)

// updateWallRun recomputes the wall running frame for the wall the actor is touching, and decides whether a wall
// run starts or ends this tick. The x component of movement is mirrored so that input is expressed relative to the
// side of the wall for the input angle check only; the caller's movement is left untouched.
func (s *Simulator) updateWallRun(state *LocomotionState, body Body, movement mgl32.Vec3, input InputState, res *SimulationResult) {
	p := s.Params
	normal := state.WallNormal
	inverseNormal := normal.Mul(-1)
	if state.WallRunning {
		state.runWall = Contact{Normal: normal, Surface: state.WallSurface}
	}

	forward := omath.SafeNormalize(omath.ProjectOnPlane(state.Look.Direction(), normal))
	up := forward.Cross(normal).Mul(omath.Sign(omath.SignedAngle(forward, normal, omath.Up)))
	state.WallRunForward, state.WallRunUp = forward, up

	vel := body.Velocity()
	towardsWall := math32.Max(omath.ScalarProjection(vel, inverseNormal), omath.ScalarProjection(movement, inverseNormal))

	belowLimit := state.WallRunCount < p.WallRunLimit || p.WallRunLimit == -1
	velocityAngleValid := math32.Abs(omath.SignedAngle(vel, omath.Down, normal)) > p.WallRunMinVelocityAngleFromDown
	newWall := !omath.ApproxEqual(state.LastWallRunNormal, normal) || state.LastWallRunSurface != state.WallSurface
	jumpSatisfied := input.Jump || !p.SpaceToStartWallRun
	fastEnough := towardsWall > WallRunMinOutwardSpeed

	wallSide := omath.Sign(-omath.SignedAngle(forward, normal, up))
	mirrored := movement
	mirrored[0] *= wallSide
	inputAngleExceeded := omath.SignedAngle(mirrored, omath.Forward, omath.Up) > WallRunMaxInputAngle

	if !state.WallRunning && belowLimit && velocityAngleValid && newWall && jumpSatisfied && fastEnough {
		s.startWallRun(state, body, res)
		return
	}
	if state.WallRunning {
		if inputAngleExceeded {
			s.endWallRun(state, body, WallRunEndInputAngle, res)
		} else if !velocityAngleValid {
			s.endWallRun(state, body, WallRunEndVelocityAngle, res)
		}
	}
}

// startWallRun latches the actor onto the current wall, disabling gravity and giving an upward boost scaled by how
// much the wall running frame points upwards.
func (s *Simulator) startWallRun(state *LocomotionState, body Body, res *SimulationResult) {
	p := s.Params
	state.WallRunning = true
	state.WallRunCount++
	state.runWall = Contact{Normal: state.WallNormal, Surface: state.WallSurface}
	body.SetUseGravity(false)

	forward, up := state.WallRunForward, state.WallRunUp
	vertical := omath.Clamp(omath.ScalarProjection(up, omath.Up)+omath.ScalarProjection(forward, omath.Up), 0, 1)
	boost := omath.SafeNormalize(forward.Add(up)).Mul(vertical * p.JumpForce * p.WallRunYVelocityBonus)
	body.SetVelocity(body.Velocity().Add(boost))

	res.WallRunStarted = true
	s.log().Debug("wall run started", "count", state.WallRunCount, "surface", uint64(state.WallSurface), "boost", boost)
}

// endWallRun restores gravity and remembers the wall so that a new wall run cannot immediately start on it again.
func (s *Simulator) endWallRun(state *LocomotionState, body Body, reason WallRunEndReason, res *SimulationResult) {
	state.WallRunning = false
	body.SetUseGravity(true)
	state.LastWallRunNormal = state.runWall.Normal
	state.LastWallRunSurface = state.runWall.Surface

	res.WallRunEnded = true
	res.EndReason = reason
	s.log().Debug("wall run ended", "reason", reason.String(), "surface", uint64(state.runWall.Surface))
}
