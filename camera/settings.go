package camera

// Settings holds the presentation tunables of the camera.
type Settings struct {
	// Sensitivity is the mouse sensitivity for rotation, in degrees per unit of look delta.
	Sensitivity float32
	// WallRunTiltDegrees is how far the camera rolls away from the wall during a wall run.
	WallRunTiltDegrees float32
	// TiltSpeed is the rate in degrees per second at which the camera rolls towards its target.
	TiltSpeed float32
	// CrouchTiltDegrees is how far the camera tilts while sliding.
	CrouchTiltDegrees float32
	// CrouchCameraSpeed is the rate in units per second at which the camera moves when crouching.
	CrouchCameraSpeed float32
	// CrouchCameraDistance is how far the camera moves downwards when crouching.
	CrouchCameraDistance float32
}

// DefaultSettings returns the default camera tunables.
func DefaultSettings() Settings {
	return Settings{
		Sensitivity:          0.1,
		WallRunTiltDegrees:   10,
		TiltSpeed:            60,
		CrouchTiltDegrees:    10,
		CrouchCameraSpeed:    10,
		CrouchCameraDistance: 0.75,
	}
}
