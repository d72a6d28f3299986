package session

import (
	"log/slog"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/assert"
	"github.com/oomph-ac/parkour/camera"
	"github.com/oomph-ac/parkour/movement"
	"github.com/oomph-ac/parkour/oerror"
	"github.com/oomph-ac/parkour/params"
	"github.com/oomph-ac/parkour/settings"
	"github.com/oomph-ac/parkour/world"
)

// Config holds the fixed-step configuration of a session.
type Config struct {
	// DeltaTime is the duration of a single simulation tick in seconds.
	DeltaTime float32
	// MaxCatchUpTicks is the most ticks a single call to Advance may run. Any further backlog is dropped.
	MaxCatchUpTicks int
	// HistorySize is the number of telemetry samples kept per actor.
	HistorySize int
	// Log is the logger of the session. If nil, logs are discarded.
	Log *slog.Logger
}

// ConfigFrom returns the session config described by the settings.
func ConfigFrom(s settings.Settings, log *slog.Logger) Config {
	return Config{
		DeltaTime:       s.DeltaTime(),
		MaxCatchUpTicks: s.Simulation.MaxCatchUpTicks,
		HistorySize:     s.Simulation.HistorySize,
		Log:             log,
	}
}

// Session owns a world, the live movement and camera tunables, and every actor simulated in that world. A
// Session is not safe for concurrent use; independent sessions may run on separate goroutines.
type Session struct {
	cfg Config
	log *slog.Logger

	world    *world.World
	params   *movement.Parameters
	camera   *camera.Settings
	sim      *movement.Simulator
	registry *params.Registry

	actors *orderedmap.OrderedMap[string, *Actor]

	accumulator float32
	tick        uint64
	paused      bool
}

// New creates a session simulating actors in the world using copies of the given tunables.
func New(w *world.World, m movement.Parameters, c camera.Settings, cfg Config) *Session {
	assert.IsTrue(w != nil, "session: world is nil")
	assert.IsTrue(cfg.DeltaTime > 0, "session: delta time must be positive, got %v", cfg.DeltaTime)
	if cfg.MaxCatchUpTicks <= 0 {
		cfg.MaxCatchUpTicks = 1
	}
	if cfg.Log == nil {
		cfg.Log = slog.New(slog.DiscardHandler)
	}

	s := &Session{
		cfg:    cfg,
		log:    cfg.Log,
		world:  w,
		params: &m,
		camera: &c,
		actors: orderedmap.NewOrderedMap[string, *Actor](),
	}
	s.sim = movement.NewSimulator(w, s.params, movement.SimulationOptions{
		DeltaTime: cfg.DeltaTime,
		Log:       s.log,
	})
	s.registry = params.Bind(s.params, s.camera, w)
	return s
}

// World returns the world of the session.
func (s *Session) World() *world.World {
	return s.world
}

// Params returns the live movement tunables. They may be changed between ticks.
func (s *Session) Params() *movement.Parameters {
	return s.params
}

// Camera returns the live camera tunables.
func (s *Session) Camera() *camera.Settings {
	return s.camera
}

// Registry returns the parameter registry bound to the live tunables of the session.
func (s *Session) Registry() *params.Registry {
	return s.registry
}

// ApplySettings replaces the live movement, camera and gravity tunables with those of the settings. It must be
// called between ticks.
func (s *Session) ApplySettings(st settings.Settings) {
	*s.params = st.Movement
	*s.camera = st.Camera
	g := s.world.Gravity()
	s.world.SetGravity(mgl32.Vec3{g.X(), st.World.Gravity, g.Z()})
	s.log.Info("settings applied")
}

// Tick returns the number of fixed ticks simulated so far.
func (s *Session) Tick() uint64 {
	return s.tick
}

// Spawn adds an actor with the given body to the session. The body's current position and the look orientation are
// remembered as the actor's spawn point.
func (s *Session) Spawn(id string, body *world.Body, look movement.Orientation) (*Actor, error) {
	if _, ok := s.actors.Get(id); ok {
		return nil, oerror.New("actor %q already exists", id)
	}
	a := newActor(id, body, look, s.camera, s.cfg.HistorySize)
	s.actors.Set(id, a)
	s.log.Info("actor spawned", "id", id, "pos", body.Position())
	return a, nil
}

// Despawn removes an actor from the session, returning false if it did not exist.
func (s *Session) Despawn(id string) bool {
	if !s.actors.Delete(id) {
		return false
	}
	s.log.Info("actor despawned", "id", id)
	return true
}

// Actor returns the actor with the id.
func (s *Session) Actor(id string) (*Actor, bool) {
	return s.actors.Get(id)
}

// Actors returns every actor in spawn order.
func (s *Session) Actors() []*Actor {
	actors := make([]*Actor, 0, s.actors.Len())
	for el := s.actors.Front(); el != nil; el = el.Next() {
		actors = append(actors, el.Value)
	}
	return actors
}

// Reset moves an actor back to its spawn point with its spawn orientation, clearing all locomotion state.
func (s *Session) Reset(id string) error {
	a, err := s.actor(id)
	if err != nil {
		return err
	}
	a.reset()
	s.log.Info("actor reset", "id", id, "pos", a.spawn)
	return nil
}

// SetInput sets the held input of an actor. A jump press in the input is latched until the next tick consumes it,
// so a press released before the tick is still seen. Look deltas in the input are integrated immediately. While
// paused only the jump level is kept, so a key held through the pause is not seen as a new press on resume.
func (s *Session) SetInput(id string, in movement.InputState) error {
	a, err := s.actor(id)
	if err != nil {
		return err
	}
	if s.paused {
		a.input = movement.InputState{Jump: in.Jump}
		return nil
	}
	if in.JumpPressed || in.Jump && !a.input.Jump {
		a.jumpPressed = true
		a.jumpMasked = false
	}
	a.presenter.Look(in.Look)
	in.Look, in.JumpPressed = mgl32.Vec2{}, false
	a.input = in
	return nil
}

// PressJump latches a jump press for an actor. Presses while paused are dropped.
func (s *Session) PressJump(id string) error {
	a, err := s.actor(id)
	if err != nil {
		return err
	}
	if !s.paused {
		a.jumpPressed = true
	}
	return nil
}

// Look integrates a look delta for an actor. Look input is ignored while paused.
func (s *Session) Look(id string, delta mgl32.Vec2) error {
	a, err := s.actor(id)
	if err != nil {
		return err
	}
	if !s.paused {
		a.presenter.Look(delta)
	}
	return nil
}

// Paused returns whether the session is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// SetPaused pauses or resumes the session. While paused no ticks run, held input other than the jump level is
// cleared and look and jump presses are dropped. A jump held across a pause is ignored until it is released.
func (s *Session) SetPaused(paused bool) {
	if s.paused == paused {
		return
	}
	s.paused = paused
	s.accumulator = 0
	for el := s.actors.Front(); el != nil; el = el.Next() {
		el.Value.input = movement.InputState{Jump: el.Value.input.Jump}
		el.Value.jumpPressed = false
		el.Value.jumpMasked = true
	}
	s.log.Info("pause toggled", "paused", paused)
}

// Advance adds elapsed seconds to the fixed-step accumulator and runs as many ticks as have accumulated, up to
// MaxCatchUpTicks. It returns the number of ticks run.
func (s *Session) Advance(elapsed float32) int {
	if s.paused || elapsed <= 0 {
		return 0
	}
	dt := s.cfg.DeltaTime
	s.accumulator += elapsed

	n := int(s.accumulator / dt)
	if n > s.cfg.MaxCatchUpTicks {
		s.log.Warn("simulation falling behind, dropping ticks", "pending", n, "max", s.cfg.MaxCatchUpTicks)
		n = s.cfg.MaxCatchUpTicks
		s.accumulator = 0
	} else {
		s.accumulator -= float32(n) * dt
	}
	for i := 0; i < n; i++ {
		s.Step()
	}
	return n
}

// Step runs exactly one fixed tick for every actor, regardless of the accumulator. It does nothing while paused.
func (s *Session) Step() {
	if s.paused {
		return
	}
	s.tick++
	for el := s.actors.Front(); el != nil; el = el.Next() {
		s.stepActor(el.Value)
	}
}

func (s *Session) stepActor(a *Actor) {
	a.state.Look = a.presenter.Orientation()

	in := a.input
	in.JumpPressed = a.jumpPressed
	a.jumpPressed = false
	if a.jumpMasked {
		if in.Jump {
			in.Jump = false
		} else {
			a.jumpMasked = false
		}
	}

	res := s.sim.Simulate(a.state, a.body, a.body, in)
	s.world.Step(a.body, s.cfg.DeltaTime)

	a.last = res
	a.record(s.tick, res)
	if res.Jumped {
		s.log.Debug("actor jumped", "id", a.id, "tick", s.tick, "mode", res.Mode)
	}
}

// Present advances the cosmetic camera of every actor by dt seconds of frame time. The camera is frozen while
// paused.
func (s *Session) Present(dt float32) {
	if s.paused {
		return
	}
	for el := s.actors.Front(); el != nil; el = el.Next() {
		el.Value.present(dt)
	}
}

func (s *Session) actor(id string) (*Actor, error) {
	a, ok := s.actors.Get(id)
	if !ok {
		return nil, oerror.New("actor %q does not exist", id)
	}
	return a, nil
}
