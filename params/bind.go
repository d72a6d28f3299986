package params

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/camera"
	"github.com/oomph-ac/parkour/movement"
)

const (
	GroupGeneral     = "General"
	GroupAngles      = "Angles"
	GroupJumpAerial  = "Jump/Aerial"
	GroupWallRunJump = "Wall Run/Jump"
	GroupPhysics     = "Physics"
	GroupCamera      = "Camera"
)

// GravityAccessor is implemented by physics substrates whose gravity can be tuned at runtime.
type GravityAccessor interface {
	Gravity() mgl32.Vec3
	SetGravity(g mgl32.Vec3)
}

// Bind returns a Registry exposing every movement and camera tunable, plus the vertical gravity of the world if
// one is given. Setting a parameter writes straight through to the bound values.
func Bind(m *movement.Parameters, c *camera.Settings, world GravityAccessor) *Registry {
	r := NewRegistry()

	general := []*Param{
		Float("Sensitivity", "Mouse sensitivity for rotation", &c.Sensitivity),
	}
	if world != nil {
		general = append(general, FloatFunc("Gravity.y", "Vertical gravity", func() float32 {
			return world.Gravity().Y()
		}, func(v float32) {
			g := world.Gravity()
			world.SetGravity(mgl32.Vec3{g.X(), v, g.Z()})
		}))
	}
	general = append(general,
		Float("Speed", "Base max ground speed", &m.Speed),
		Float("SprintSpeed", "Sprint max ground speed", &m.SprintSpeed),
		Bool("CanSprintInAir", "Is the player able to sprint while in the air", &m.CanSprintInAir),
		Float("Acceleration", "Movement delta per second on ground", &m.Acceleration),
	)
	mustAdd(r, GroupGeneral, general...)

	mustAdd(r, GroupAngles,
		Float("GroundAngleLimit", "Max angle of walkable ground", &m.GroundAngleLimit),
		Float("SprintAngleLimit", "Max angle from forward where sprint is valid", &m.SprintAngleLimit),
		Float("GroundedThreshold", "Max distance from ground where player is grounded", &m.GroundedThreshold),
	)
	mustAdd(r, GroupJumpAerial,
		Float("AirSpeedMultiplier", "Input multiplier while airborne", &m.AirSpeedMultiplier),
		Float("JumpForce", "Vertical velocity given on jump", &m.JumpForce),
		Float("JumpMinAirTime", "Min time after jump that actor cannot be grounded", &m.JumpMinAirTime),
	)
	mustAdd(r, GroupWallRunJump,
		Float("WallJumpModifier", "Wall jump force modifier", &m.WallJumpModifier),
		Float("WallJumpVelocityRetention", "Velocity retention on wall jump", &m.WallJumpVelocityRetention),
		Bool("WallJumpRetainY", "Does velocity retention include vertical velocity?", &m.WallJumpRetainY),
		Bool("WallJumpInLookDirection", "Wall jump direction follows look direction", &m.WallJumpInLookDirection),
		Int("WallRunLimit", "Wall runs that can be performed before touching the ground", &m.WallRunLimit),
		Float("WallRunGravityModifier", "Amount of gravity applied while wall running", &m.WallRunGravityModifier),
		Float("WallRunYVelocityBonus", "Max amount of JumpForce added on starting wall run", &m.WallRunYVelocityBonus),
		Float("WallRunMinVelocityAngleFromDown", "Min angle between velocity and down to wall run", &m.WallRunMinVelocityAngleFromDown),
		Bool("SpaceToStartWallRun", "Require space to be held to begin a wall run", &m.SpaceToStartWallRun),
		Bool("IsInputOnWallVelocityAligned", "If true, W always points towards velocity while wall running", &m.IsInputOnWallVelocityAligned),
	)
	mustAdd(r, GroupPhysics,
		Float("BaseFriction", "Friction while input is 0 on ground", &m.BaseFriction),
		Float("FrictionGainTime", "Time after landing it takes to reach full friction", &m.FrictionGainTime),
		Float("SlideFriction", "Friction while sliding on ground", &m.SlideFriction),
		Float("AerialDragCoefficient", "Percent loss of horizontal velocity per second while aerial", &m.AerialDragCoefficient),
	)
	mustAdd(r, GroupCamera,
		Float("TiltDegrees", "Degree tilt during wall run", &c.WallRunTiltDegrees),
		Float("TiltSpeed", "Degrees per second to tilt to target rotation", &c.TiltSpeed),
		Float("CrouchTiltDegrees", "Degree tilt during slide", &c.CrouchTiltDegrees),
		Float("CrouchCameraSpeed", "Units per second the camera moves when crouching", &c.CrouchCameraSpeed),
		Float("CrouchCameraDistance", "Distance the camera moves down when crouching", &c.CrouchCameraDistance),
	)
	return r
}

func mustAdd(r *Registry, group string, params ...*Param) {
	if err := r.Add(group, params...); err != nil {
		panic(err)
	}
}
