package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/movement"
	"github.com/oomph-ac/parkour/omath"
)

// PitchLimit is the maximum absolute pitch of the head in degrees.
const PitchLimit = 89

// Snapshot is the last committed locomotion state of an actor that the camera reacts to.
type Snapshot struct {
	Velocity    mgl32.Vec3
	WallRunning bool
	WallNormal  mgl32.Vec3
	Crouching   bool
}

// SnapshotOf returns the snapshot of the locomotion state and the velocity of its body.
func SnapshotOf(state *movement.LocomotionState, vel mgl32.Vec3) Snapshot {
	return Snapshot{
		Velocity:    vel,
		WallRunning: state.WallRunning,
		WallNormal:  state.WallNormal,
		Crouching:   state.Crouching,
	}
}

// Frame is the camera pose produced by a presentation tick.
type Frame struct {
	Yaw   float32
	Pitch float32
	// Tilt is the cosmetic roll applied between the body and the head, in the body's local frame.
	Tilt mgl32.Quat
	// EyeOffset is the vertical offset of the head from its base position.
	EyeOffset float32
}

// Rotation returns the world rotation of the head.
func (f Frame) Rotation() mgl32.Quat {
	body := mgl32.QuatRotate(mgl32.DegToRad(f.Yaw), omath.Up)
	head := mgl32.QuatRotate(mgl32.DegToRad(-f.Pitch), omath.Right)
	return body.Mul(f.Tilt).Mul(head)
}

// TiltDegrees returns the angle of the cosmetic tilt in degrees.
func (f Frame) TiltDegrees() float32 {
	return quatAngle(mgl32.QuatIdent(), f.Tilt)
}

// Presenter integrates look input into an orientation and produces the cosmetic camera pose. It only reads
// locomotion state and never mutates it.
type Presenter struct {
	Settings *Settings

	yaw, pitch float32
	tilt       mgl32.Quat
	eyeOffset  float32
}

// NewPresenter returns a Presenter facing the given orientation.
func NewPresenter(settings *Settings, look movement.Orientation) *Presenter {
	p := &Presenter{Settings: settings}
	p.Reset(look)
	return p
}

// Reset snaps the presenter to the given orientation and clears all cosmetic effects.
func (p *Presenter) Reset(look movement.Orientation) {
	p.yaw = look.Yaw
	p.pitch = omath.Clamp(look.Pitch, -PitchLimit, PitchLimit)
	p.tilt = mgl32.QuatIdent()
	p.eyeOffset = 0
}

// Look accumulates a look delta scaled by the sensitivity. X turns the body, Y pitches the head upwards.
func (p *Presenter) Look(delta mgl32.Vec2) {
	p.yaw = math32.Mod(p.yaw+delta.X()*p.Settings.Sensitivity, 360)
	p.pitch = omath.Clamp(p.pitch+delta.Y()*p.Settings.Sensitivity, -PitchLimit, PitchLimit)
}

// Orientation returns the current look orientation.
func (p *Presenter) Orientation() movement.Orientation {
	return movement.Orientation{Yaw: p.yaw, Pitch: p.pitch}
}

// Update moves the cosmetic tilt and eye offset towards their targets for the given snapshot, limited by the
// configured rates over dt seconds.
func (p *Presenter) Update(snap Snapshot, dt float32) Frame {
	s := p.Settings
	target := mgl32.QuatIdent()
	horizontal := omath.Horizontal(snap.Velocity)
	if snap.WallRunning {
		side := -omath.Sign(omath.SignedAngle(horizontal, snap.WallNormal, omath.Up))
		target = p.localTilt(s.WallRunTiltDegrees*side, horizontal)
	} else if snap.Crouching && snap.Velocity.Len() > 0 {
		target = p.localTilt(s.CrouchTiltDegrees, omath.Horizontal(snap.Velocity.Cross(omath.Up)))
	}
	p.tilt = rotateTowards(p.tilt, target, s.TiltSpeed*dt)

	targetOffset := float32(0)
	if snap.Crouching && !snap.WallRunning {
		targetOffset = -s.CrouchCameraDistance
	}
	diff := targetOffset - p.eyeOffset
	p.eyeOffset += omath.MinByAbsoluteFloat(diff, omath.Sign(diff)*s.CrouchCameraSpeed*dt)

	return p.Frame()
}

// Frame returns the current camera pose without advancing it.
func (p *Presenter) Frame() Frame {
	return Frame{Yaw: p.yaw, Pitch: p.pitch, Tilt: p.tilt, EyeOffset: p.eyeOffset}
}

// localTilt returns a rotation of degrees around the world axis, expressed in the body's local frame.
func (p *Presenter) localTilt(degrees float32, axis mgl32.Vec3) mgl32.Quat {
	local := mgl32.Vec3{axis.Dot(omath.YawRight(p.yaw)), 0, axis.Dot(omath.YawForward(p.yaw))}
	local = omath.SafeNormalize(local)
	if local.LenSqr() == 0 {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatRotate(mgl32.DegToRad(degrees), local)
}

// rotateTowards rotates from towards to by at most maxDegrees.
func rotateTowards(from, to mgl32.Quat, maxDegrees float32) mgl32.Quat {
	angle := quatAngle(from, to)
	if angle == 0 || maxDegrees >= angle {
		return to
	}
	if to.Dot(from) < 0 {
		to = to.Scale(-1)
	}
	return mgl32.QuatSlerp(from, to, maxDegrees/angle).Normalize()
}

// quatAngle returns the angle in degrees between two rotations.
func quatAngle(a, b mgl32.Quat) float32 {
	dot := math32.Min(math32.Abs(a.Dot(b)), 1)
	if dot > 1-1e-6 {
		return 0
	}
	return mgl32.RadToDeg(math32.Acos(dot) * 2)
}
