package movement

import (
	"log/slog"

	"github.com/oomph-ac/parkour/assert"
)

var discardLogger = slog.New(slog.DiscardHandler)

// SimulationOptions define simulator behaviour.
type SimulationOptions struct {
	// DeltaTime is the fixed duration of a single tick in seconds.
	DeltaTime float32
	// Log receives transition logs at debug level. If nil, logs are discarded.
	Log *slog.Logger
}

// Simulator advances the locomotion of actors one fixed tick at a time. A Simulator holds no per-actor state, so
// one may be shared across any number of actors, as long as each actor is only simulated by one goroutine at a time.
type Simulator struct {
	Env     Environment
	Params  *Parameters
	Options SimulationOptions
}

// NewSimulator creates a Simulator using the given environment and parameters.
func NewSimulator(env Environment, params *Parameters, opts SimulationOptions) *Simulator {
	assert.IsTrue(params != nil, "movement: simulator requires parameters")
	assert.IsTrue(opts.DeltaTime > 0, "movement: delta time must be positive, got %v", opts.DeltaTime)
	return &Simulator{Env: env, Params: params, Options: opts}
}

func (s *Simulator) log() *slog.Logger {
	if s.Options.Log != nil {
		return s.Options.Log
	}
	return discardLogger
}
