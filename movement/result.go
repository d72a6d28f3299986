package movement

import "github.com/go-gl/mathgl/mgl32"

// Mode is the locomotion mode of an actor at the end of a tick.
type Mode uint8

const (
	ModeGrounded Mode = iota
	ModeAirborne
	ModeWallRunning
	ModeWallJumping
)

// String ...
func (m Mode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeAirborne:
		return "airborne"
	case ModeWallRunning:
		return "wall_running"
	case ModeWallJumping:
		return "wall_jumping"
	}
	return "unknown"
}

// WallRunEndReason describes why a wall run ended.
type WallRunEndReason uint8

const (
	WallRunEndNone WallRunEndReason = iota
	// WallRunEndLeftWall is used when the actor is no longer touching a wall.
	WallRunEndLeftWall
	// WallRunEndGrounded is used when the actor touched the ground.
	WallRunEndGrounded
	// WallRunEndInputAngle is used when movement input turned too far away from the wall run direction.
	WallRunEndInputAngle
	// WallRunEndVelocityAngle is used when velocity pointed too close to straight down.
	WallRunEndVelocityAngle
	// WallRunEndWallJump is used when the actor jumped off the wall.
	WallRunEndWallJump
)

// String ...
func (r WallRunEndReason) String() string {
	switch r {
	case WallRunEndNone:
		return "none"
	case WallRunEndLeftWall:
		return "left_wall"
	case WallRunEndGrounded:
		return "grounded"
	case WallRunEndInputAngle:
		return "input_angle"
	case WallRunEndVelocityAngle:
		return "velocity_angle"
	case WallRunEndWallJump:
		return "wall_jump"
	}
	return "unknown"
}

// SimulationResult captures the outcome of a single simulation tick.
type SimulationResult struct {
	Velocity mgl32.Vec3
	Mode     Mode

	Grounded    bool
	OnWall      bool
	WallRunning bool
	WallJumping bool
	Crouching   bool

	Jumped         bool
	WallRunStarted bool
	WallRunEnded   bool
	EndReason      WallRunEndReason

	Friction float32
}
