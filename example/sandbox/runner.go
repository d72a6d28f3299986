package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/oomph-ac/parkour/movement"
	"github.com/oomph-ac/parkour/scenario"
	"github.com/oomph-ac/parkour/session"
	"github.com/oomph-ac/parkour/settings"
	"github.com/oomph-ac/parkour/world"
)

const actorID = "player"

// runner plays a single scenario in its own session.
type runner struct {
	scenario  *scenario.Scenario
	settings  settings.Settings
	overrides []string
	realtime  bool
	updates   <-chan settings.Settings
	stop      <-chan struct{}
	log       *slog.Logger
}

func (r *runner) run() {
	sc := r.scenario
	w := world.New(r.log)
	sc.Build(w)

	s := session.New(w, r.settings.Movement, r.settings.Camera, session.ConfigFrom(r.settings, r.log))
	s.ApplySettings(r.settings)
	if err := r.applyOverrides(s); err != nil {
		r.log.Error("invalid parameter override", "err", err)
		return
	}
	a, err := s.Spawn(actorID, sc.NewBody(), sc.Spawn.Orientation())
	if err != nil {
		r.log.Error("unable to spawn actor", "err", err)
		return
	}

	dt := r.settings.DeltaTime()
	var ticker *time.Ticker
	if r.realtime {
		ticker = time.NewTicker(time.Duration(float64(dt) * float64(time.Second)))
		defer ticker.Stop()
	}

	var (
		top       float32
		wallRuns  int
		wallJumps int
		jumps     int
	)
	p := scenario.NewPlayer(sc)
	for !p.Done() {
		select {
		case <-r.stop:
			r.log.Info("scenario interrupted", "tick", p.Tick())
			return
		case st := <-r.updates:
			s.ApplySettings(st)
			if err := r.applyOverrides(s); err != nil {
				r.log.Warn("invalid parameter override", "err", err)
			}
		default:
		}
		if ticker != nil {
			<-ticker.C
		}

		if err := s.SetInput(actorID, p.Next()); err != nil {
			r.log.Error("unable to set input", "err", err)
			return
		}
		s.Step()
		s.Present(dt)

		res := a.LastResult()
		top = max(top, a.Readout().HorizontalSpeed)
		if res.WallRunStarted {
			wallRuns++
		}
		if res.Jumped {
			if res.Mode == movement.ModeWallJumping {
				wallJumps++
			} else {
				jumps++
			}
		}
	}

	r.log.Info("scenario finished",
		"ticks", s.Tick(),
		"pos", a.Body().Position(),
		"speed", a.Readout().String(),
		"top_horizontal_speed", top,
		"mode", a.LastResult().Mode,
		"jumps", jumps,
		"wall_runs", wallRuns,
		"wall_jumps", wallJumps,
	)
}

// applyOverrides applies the scenario parameters first so that command line overrides win.
func (r *runner) applyOverrides(s *session.Session) error {
	if err := r.scenario.ApplyParams(s.Registry()); err != nil {
		return err
	}
	for _, o := range r.overrides {
		name, value, _ := strings.Cut(o, "=")
		if err := s.Registry().SetString(name, value); err != nil {
			return err
		}
	}
	return nil
}
