package telemetry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/movement"
	"github.com/oomph-ac/parkour/omath"
)

// Readout is the speed display of an actor, rounded to one decimal.
type Readout struct {
	Speed           float32
	HorizontalSpeed float32
}

// ReadoutOf returns the readout for the given velocity.
func ReadoutOf(vel mgl32.Vec3) Readout {
	return Readout{
		Speed:           omath.Round(vel.Len(), 1),
		HorizontalSpeed: omath.Round(omath.Horizontal(vel).Len(), 1),
	}
}

// String ...
func (r Readout) String() string {
	return fmt.Sprintf("Speed: %.1f (%.1f)", r.Speed, r.HorizontalSpeed)
}

// Sample is the telemetry recorded for a single simulation tick.
type Sample struct {
	Tick     uint64
	Velocity mgl32.Vec3
	Readout  Readout
	Mode     movement.Mode
}

// SampleOf builds a sample from the result of a simulation tick.
func SampleOf(tick uint64, res movement.SimulationResult) Sample {
	return Sample{Tick: tick, Velocity: res.Velocity, Readout: ReadoutOf(res.Velocity), Mode: res.Mode}
}
