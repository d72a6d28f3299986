package movement

const (
	// WallContactMaxAngle is the largest angle from up, in degrees, that a contact normal can have and still be
	// treated as a wall. Anything steeper is a ceiling.
	WallContactMaxAngle = 95
	// WallRunMinOutwardSpeed is the speed towards the wall, along the inverse wall normal, that is required to latch
	// onto it.
	WallRunMinOutwardSpeed = 0.4
	// WallRunMaxInputAngle is the largest angle, in degrees, between movement input and the wall run forward
	// direction before a wall run is ended.
	WallRunMaxInputAngle = 45
	// MoveInputDeadzone is the movement input magnitude under which the input is treated as released.
	MoveInputDeadzone = 0.01

	// Look-based wall jump clamps, in degrees, relative to the horizontal velocity direction.
	WallJumpAzimuthMin  = -90
	WallJumpAzimuthMax  = -30
	WallJumpAltitudeMin = -45
	WallJumpAltitudeMax = 90
)
