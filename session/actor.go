package session

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/camera"
	"github.com/oomph-ac/parkour/movement"
	"github.com/oomph-ac/parkour/telemetry"
	"github.com/oomph-ac/parkour/world"
)

// Actor is a single simulated character: its body in the world, its locomotion state and its camera.
type Actor struct {
	id string

	body      *world.Body
	state     *movement.LocomotionState
	presenter *camera.Presenter
	history   *telemetry.History[telemetry.Sample]

	spawn     mgl32.Vec3
	spawnLook movement.Orientation

	input       movement.InputState
	jumpPressed bool
	// jumpMasked hides a jump level held across a pause until it is released.
	jumpMasked bool

	last  movement.SimulationResult
	frame camera.Frame
}

func newActor(id string, body *world.Body, look movement.Orientation, settings *camera.Settings, historySize int) *Actor {
	p := camera.NewPresenter(settings, look)
	return &Actor{
		id:        id,
		body:      body,
		state:     movement.NewLocomotionState(look),
		presenter: p,
		history:   telemetry.NewHistory[telemetry.Sample](historySize),
		spawn:     body.Position(),
		spawnLook: look,
		frame:     p.Frame(),
	}
}

// ID returns the id of the actor.
func (a *Actor) ID() string {
	return a.id
}

// Body returns the physics body of the actor.
func (a *Actor) Body() *world.Body {
	return a.body
}

// State returns the locomotion state of the actor. It should only be read between ticks.
func (a *Actor) State() *movement.LocomotionState {
	return a.state
}

// Orientation returns the current look orientation of the actor.
func (a *Actor) Orientation() movement.Orientation {
	return a.presenter.Orientation()
}

// LastResult returns the result of the last tick simulated for the actor.
func (a *Actor) LastResult() movement.SimulationResult {
	return a.last
}

// Frame returns the last presented camera frame.
func (a *Actor) Frame() camera.Frame {
	return a.frame
}

// Readout returns the current speed readout of the actor.
func (a *Actor) Readout() telemetry.Readout {
	return telemetry.ReadoutOf(a.body.Velocity())
}

// History returns the telemetry samples recorded for the actor.
func (a *Actor) History() *telemetry.History[telemetry.Sample] {
	return a.history
}

func (a *Actor) record(tick uint64, res movement.SimulationResult) {
	if a.history.Cap() == 0 {
		return
	}
	_ = a.history.Append(telemetry.SampleOf(tick, res))
}

func (a *Actor) present(dt float32) {
	a.frame = a.presenter.Update(camera.SnapshotOf(a.state, a.body.Velocity()), dt)
}

func (a *Actor) reset() {
	a.body.SetPosition(a.spawn)
	a.body.SetVelocity(mgl32.Vec3{})
	a.body.SetUseGravity(true)
	a.body.SetFriction(0)

	a.state = movement.NewLocomotionState(a.spawnLook)
	a.presenter.Reset(a.spawnLook)
	a.history.Reset()
	a.input, a.jumpPressed, a.jumpMasked = movement.InputState{}, false, false
	a.last = movement.SimulationResult{}
	a.frame = a.presenter.Frame()
}
