package settings

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oomph-ac/parkour/curve"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("expected default settings to be valid: %v", err)
	}
	if s.DeltaTime() != 0.02 {
		t.Fatalf("expected a 50hz tick, got %v", s.DeltaTime())
	}
	if level, _ := s.SlogLevel(); level != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", level)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	s, err := Parse([]byte(`
[Simulation]
TickRate = 100

[Log]
Level = "debug"

[Movement]
Speed = 7.5
WallRunLimit = 2
SpaceToStartWallRun = true

[Movement.WallJumpAngleCurve]
Interpolation = "linear"

[[Movement.WallJumpAngleCurve.Points]]
In = 0.0
Out = 0.0

[[Movement.WallJumpAngleCurve.Points]]
In = 1.0
Out = 90.0

[Camera]
Sensitivity = 0.5
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Simulation.TickRate != 100 || s.Simulation.MaxCatchUpTicks != 5 {
		t.Fatalf("unexpected simulation settings %+v", s.Simulation)
	}
	if s.Movement.Speed != 7.5 || s.Movement.WallRunLimit != 2 || !s.Movement.SpaceToStartWallRun {
		t.Fatalf("unexpected movement settings %+v", s.Movement)
	}
	if s.Movement.JumpForce != 10 {
		t.Fatalf("expected unset values to keep their defaults, got %v", s.Movement.JumpForce)
	}
	c := s.Movement.WallJumpAngleCurve
	if c.Interpolation != curve.InterpolationLinear || len(c.Points) != 2 || c.Evaluate(0.5) != 45 {
		t.Fatalf("unexpected curve %+v", c)
	}
	if s.Camera.Sensitivity != 0.5 || s.Camera.TiltSpeed != 60 {
		t.Fatalf("unexpected camera settings %+v", s.Camera)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	for _, data := range []string{
		"[Simulation]\nTickRate = 0\n",
		"[Log]\nLevel = \"loud\"\n",
		"[Log]\nFormat = \"xml\"\n",
		"not toml at all = = =",
	} {
		if _, err := Parse([]byte(data)); err == nil {
			t.Fatalf("expected %q to be rejected", data)
		}
	}
}

func TestSaveDefaultAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected missing file to fail")
	}
	if err := SaveDefault(path); err != nil {
		t.Fatalf("save default: %v", err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatalf("expected saving over an existing file to fail")
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := DefaultSettings()
	if s.Movement.Speed != def.Movement.Speed || s.World.Gravity != def.World.Gravity || len(s.Movement.WallJumpAngleCurve.Points) != 3 {
		t.Fatalf("expected round trip of the default file, got %+v", s)
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("save default: %v", err)
	}
	w, err := Watch(path, nil)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[Movement]\nSpeed = 9.0\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case s := <-w.Updates:
		if s.Movement.Speed != 9 {
			t.Fatalf("expected reloaded speed 9, got %v", s.Movement.Speed)
		}
	case err := <-w.Errors:
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for settings reload")
	}
}

func TestWatcherReloadsLastOfRapidWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("save default: %v", err)
	}
	w, err := Watch(path, nil)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[Movement]\nSpeed = 8.0\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(path, []byte("[Movement]\nSpeed = 9.0\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case s := <-w.Updates:
		if s.Movement.Speed != 9 {
			t.Fatalf("expected the last write to be reloaded, got speed %v", s.Movement.Speed)
		}
	case err := <-w.Errors:
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for settings reload")
	}
}
