package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/oomph-ac/parkour/camera"
	"github.com/oomph-ac/parkour/movement"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for a sandbox session.
type Settings struct {
	Simulation struct {
		// TickRate is the number of fixed simulation ticks per second.
		TickRate int
		// MaxCatchUpTicks is the most ticks a single frame may run before the backlog is dropped.
		MaxCatchUpTicks int
		// HistorySize is the number of telemetry samples kept per actor.
		HistorySize int
	}
	Log struct {
		// Level is one of debug, info, warn or error.
		Level string
		// Format is either text or json.
		Format string
	}
	Sentry struct {
		DSN         string
		Environment string
	}
	StatsView struct {
		Enabled bool
		Addr    string
	}
	World struct {
		// Gravity is the vertical gravity acceleration.
		Gravity float32
	}
	Movement movement.Parameters
	Camera   camera.Settings
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Simulation.TickRate = 50
	s.Simulation.MaxCatchUpTicks = 5
	s.Simulation.HistorySize = 256

	s.Log.Level = "info"
	s.Log.Format = "text"

	s.Sentry.Environment = "development"

	s.StatsView.Addr = "localhost:8080"

	s.World.Gravity = -9.81
	s.Movement = movement.DefaultParameters()
	s.Camera = camera.DefaultSettings()
	return s
}

// Validate returns an error if the settings cannot drive a session.
func (s Settings) Validate() error {
	if s.Simulation.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", s.Simulation.TickRate)
	}
	if s.Simulation.MaxCatchUpTicks <= 0 {
		return fmt.Errorf("max catch up ticks must be positive, got %d", s.Simulation.MaxCatchUpTicks)
	}
	if err := s.Movement.WallJumpAngleCurve.Validate(); err != nil {
		return fmt.Errorf("wall jump angle curve: %w", err)
	}
	if _, err := s.SlogLevel(); err != nil {
		return err
	}
	if s.Log.Format != "text" && s.Log.Format != "json" {
		return fmt.Errorf("unknown log format %q", s.Log.Format)
	}
	return nil
}

// DeltaTime returns the duration of a single simulation tick in seconds.
func (s Settings) DeltaTime() float32 {
	return 1 / float32(s.Simulation.TickRate)
}

// SlogLevel returns the configured log level.
func (s Settings) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.Log.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s.Log.Level, err)
	}
	return level, nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist. Values
// missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}
	return Parse(data)
}

// Parse decodes settings from TOML data on top of the defaults.
func Parse(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
