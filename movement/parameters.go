package movement

import "github.com/oomph-ac/parkour/curve"

// Parameters holds every movement tunable. A Parameters value may be shared by several simulators and mutated
// between ticks; values are not validated beyond their natural numeric ranges.
type Parameters struct {
	// Speed is the base max movement velocity.
	Speed float32
	// SprintSpeed is the max velocity during sprint, and the air speed ceiling.
	SprintSpeed float32
	// CanSprintInAir is whether the player can increase their maximum velocity in the air by sprinting.
	CanSprintInAir bool
	// Acceleration is the velocity change per second applied on the ground.
	Acceleration float32
	// AirSpeedMultiplier is the input multiplier for maneuvering in the air.
	AirSpeedMultiplier float32
	// AerialDragCoefficient is the fraction of horizontal velocity lost per second while airborne.
	AerialDragCoefficient float32

	// GroundAngleLimit is the degree limit which the player can walk on and be considered grounded.
	GroundAngleLimit float32
	// SprintAngleLimit is the degree limit between the player forward and movement direction that sprint can be
	// used in.
	SprintAngleLimit float32
	// GroundedThreshold is the distance below the collider at which the player is still considered grounded.
	GroundedThreshold float32

	// JumpForce is the vertical velocity given to the player on jump.
	JumpForce float32
	// JumpMinAirTime is the time after a jump during which the player cannot be grounded.
	JumpMinAirTime float32

	// WallJumpModifier is the modifier on JumpForce for a wall jump.
	WallJumpModifier float32
	// WallJumpVelocityRetention is the fraction of velocity retained when wall jumping.
	WallJumpVelocityRetention float32
	// WallJumpRetainY is whether vertical velocity is retained when jumping from a wall.
	WallJumpRetainY bool
	// WallJumpInLookDirection selects the look-based wall jump over the absolute one.
	WallJumpInLookDirection bool
	// WallJumpAngleCurve maps the normalised vertical look angle to the wall jump altitude in degrees.
	WallJumpAngleCurve curve.Curve

	// WallRunLimit is how many wall runs can be performed before touching the ground again. -1 for unlimited.
	WallRunLimit int
	// WallRunMinVelocityAngleFromDown is the minimum angle between velocity and down to start or keep a wall run.
	WallRunMinVelocityAngleFromDown float32
	// WallRunYVelocityBonus is the multiplier on JumpForce added vertically when a wall run starts.
	WallRunYVelocityBonus float32
	// WallRunGravityModifier is the fraction of gravity applied while wall running.
	WallRunGravityModifier float32
	// SpaceToStartWallRun is whether jump must be held to begin a wall run.
	SpaceToStartWallRun bool
	// IsInputOnWallVelocityAligned makes forward input follow the wall run rather than the look direction.
	IsInputOnWallVelocityAligned bool

	// SlideFriction is the friction while sliding.
	SlideFriction float32
	// BaseFriction is the friction while no input is applied on the ground.
	BaseFriction float32
	// FrictionGainTime is the time after landing it takes to reach full friction.
	FrictionGainTime float32
}

// DefaultParameters returns the default movement tunables.
func DefaultParameters() Parameters {
	return Parameters{
		Speed:                 5,
		SprintSpeed:           15,
		CanSprintInAir:        false,
		Acceleration:          200,
		AirSpeedMultiplier:    2.5,
		AerialDragCoefficient: 0.2,

		GroundAngleLimit:  60,
		SprintAngleLimit:  60,
		GroundedThreshold: 0.05,

		JumpForce:      10,
		JumpMinAirTime: 0.01,

		WallJumpModifier:          1,
		WallJumpVelocityRetention: 0.75,
		WallJumpRetainY:           false,
		WallJumpInLookDirection:   false,
		WallJumpAngleCurve:        DefaultWallJumpAngleCurve(),

		WallRunLimit:                    -1,
		WallRunMinVelocityAngleFromDown: 30,
		WallRunYVelocityBonus:           1,
		WallRunGravityModifier:          0.5,
		SpaceToStartWallRun:             false,
		IsInputOnWallVelocityAligned:    true,

		SlideFriction:    1.5,
		BaseFriction:     10,
		FrictionGainTime: 0.5,
	}
}

// DefaultWallJumpAngleCurve returns the default look-altitude response: looking down still gives a little lift, and
// looking up gives progressively more.
func DefaultWallJumpAngleCurve() curve.Curve {
	return curve.Curve{
		Interpolation: curve.InterpolationMonotone,
		Points: []curve.Point{
			{In: 0, Out: 10},
			{In: 1.0 / 3.0, Out: 25},
			{In: 1, Out: 75},
		},
	}
}
