package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/omath"
)

// Orientation is the look orientation of an actor in degrees. Yaw rotates the body around the up axis and Pitch
// rotates the head, with positive values looking up.
type Orientation struct {
	Yaw   float32
	Pitch float32
}

// Forward returns the horizontal forward direction of the body.
func (o Orientation) Forward() mgl32.Vec3 {
	return omath.YawForward(o.Yaw)
}

// Direction returns the unit look direction of the head.
func (o Orientation) Direction() mgl32.Vec3 {
	return omath.DirectionVector(o.Yaw, o.Pitch)
}

// LocomotionState contains the locomotion state of a single actor. It is created once when the actor spawns and is
// mutated in place by the Simulator every tick.
type LocomotionState struct {
	Look Orientation

	Grounded bool
	// GroundNormal is only meaningful while Grounded.
	GroundNormal mgl32.Vec3
	OnWall       bool
	// WallNormal and WallSurface are only meaningful while OnWall.
	WallNormal  mgl32.Vec3
	WallSurface SurfaceID

	WallRunning bool
	// WallRunForward and WallRunUp form the wall running frame, recomputed every tick the actor is on a wall.
	WallRunForward mgl32.Vec3
	WallRunUp      mgl32.Vec3
	WallRunCount   int
	// runWall is the wall of the current wall run, kept after the wall contact is lost.
	runWall Contact

	// LastWallRunNormal and LastWallRunSurface identify the wall of the last ended wall run. They are cleared on
	// landing.
	LastWallRunNormal  mgl32.Vec3
	LastWallRunSurface SurfaceID

	WallJumping bool
	Crouching   bool

	// JumpRequested is the jump latch: set by a press edge and consumed on the next tick the jump resolver runs.
	JumpRequested bool
	// JumpHeld is the jump level observed on the previous tick, used to detect press edges.
	JumpHeld bool

	TimeSinceLastJump float32
	// TimeSinceGrounded is how long the actor has been continuously grounded.
	TimeSinceGrounded float32
}

// NewLocomotionState returns a state for a freshly spawned actor facing the given orientation.
func NewLocomotionState(look Orientation) *LocomotionState {
	return &LocomotionState{Look: look}
}

// Mode returns the locomotion mode the state is currently in.
func (s *LocomotionState) Mode() Mode {
	switch {
	case s.WallJumping:
		return ModeWallJumping
	case s.WallRunning:
		return ModeWallRunning
	case s.Grounded:
		return ModeGrounded
	default:
		return ModeAirborne
	}
}

// OnSurface returns true if the actor is touching ground or a wall.
func (s *LocomotionState) OnSurface() bool {
	return s.Grounded || s.OnWall
}

// forgetLastWallRun clears the memory of the last wall run and resets the wall run budget.
func (s *LocomotionState) forgetLastWallRun() {
	s.WallRunCount = 0
	s.LastWallRunNormal = mgl32.Vec3{}
	s.LastWallRunSurface = NoSurface
}
