package movement

import "github.com/go-gl/mathgl/mgl32"

// InputState represents a single tick's player input.
type InputState struct {
	// Move is the 2-axis move vector: X strafes right, Y moves forward.
	Move mgl32.Vec2
	// Look is the look delta accumulated since the previous frame. It is consumed by the camera, not the simulator.
	Look mgl32.Vec2

	// Jump is the held level of the jump action.
	Jump bool
	// JumpPressed is set if the input layer observed a press edge since the previous tick.
	JumpPressed bool

	Sprint bool
	Crouch bool
	Fire   bool
}
