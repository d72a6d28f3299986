package scenario

import (
	"fmt"
	"os"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/movement"
	"github.com/oomph-ac/parkour/params"
	"github.com/oomph-ac/parkour/world"
	"gopkg.in/yaml.v3"
)

const (
	defaultWidth  = 1
	defaultHeight = 2
)

// Scenario is a scripted level: static geometry, a spawn point and a timeline of inputs.
type Scenario struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Ticks       int               `yaml:"ticks"`
	Spawn       Spawn             `yaml:"spawn"`
	Boxes       []BoxSpec         `yaml:"boxes"`
	Params      map[string]string `yaml:"params"`
	Steps       []Step            `yaml:"steps"`
}

// Spawn is where the actor starts and where it returns on reset.
type Spawn struct {
	Position mgl32.Vec3 `yaml:"position"`
	Yaw      float32    `yaml:"yaw"`
	Pitch    float32    `yaml:"pitch"`
	Width    float32    `yaml:"width"`
	Height   float32    `yaml:"height"`
}

// Orientation returns the spawn look orientation.
func (s Spawn) Orientation() movement.Orientation {
	return movement.Orientation{Yaw: s.Yaw, Pitch: s.Pitch}
}

// BoxSpec is a named static box of level geometry.
type BoxSpec struct {
	Name string     `yaml:"name"`
	Min  mgl32.Vec3 `yaml:"min"`
	Max  mgl32.Vec3 `yaml:"max"`
}

// Step holds an input for For ticks starting at tick At. Buttons are held for the whole step.
type Step struct {
	At     int        `yaml:"at"`
	For    int        `yaml:"for"`
	Move   mgl32.Vec2 `yaml:"move"`
	Look   mgl32.Vec2 `yaml:"look"`
	Jump   bool       `yaml:"jump"`
	Sprint bool       `yaml:"sprint"`
	Crouch bool       `yaml:"crouch"`
	Fire   bool       `yaml:"fire"`
}

// active reports whether the step covers the tick.
func (s Step) active(tick int) bool {
	return tick >= s.At && tick < s.At+s.For
}

// Load reads and parses a scenario file.
func Load(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("scenario: load %s: %w", filename, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", filename, err)
	}
	return sc, nil
}

// Parse decodes a scenario from YAML, filling in default step lengths and actor size.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if sc.Spawn.Width == 0 {
		sc.Spawn.Width = defaultWidth
	}
	if sc.Spawn.Height == 0 {
		sc.Spawn.Height = defaultHeight
	}
	for i := range sc.Steps {
		if sc.Steps[i].For == 0 {
			sc.Steps[i].For = 1
		}
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate returns an error if the scenario cannot be played.
func (sc *Scenario) Validate() error {
	if sc.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if sc.Ticks <= 0 {
		return fmt.Errorf("scenario %s: ticks must be positive, got %d", sc.Name, sc.Ticks)
	}
	if sc.Spawn.Width <= 0 || sc.Spawn.Height <= 0 {
		return fmt.Errorf("scenario %s: actor size must be positive", sc.Name)
	}

	seen := make(map[string]struct{}, len(sc.Boxes))
	for _, b := range sc.Boxes {
		if b.Name == "" {
			return fmt.Errorf("scenario %s: box without a name", sc.Name)
		}
		if _, ok := seen[b.Name]; ok {
			return fmt.Errorf("scenario %s: duplicate box %q", sc.Name, b.Name)
		}
		seen[b.Name] = struct{}{}
		for i := 0; i < 3; i++ {
			if b.Min[i] >= b.Max[i] {
				return fmt.Errorf("scenario %s: box %q has no volume", sc.Name, b.Name)
			}
		}
	}
	for i, s := range sc.Steps {
		if s.At < 0 || s.For < 0 {
			return fmt.Errorf("scenario %s: step %d has a negative range", sc.Name, i)
		}
	}
	return nil
}

// Build adds the scenario geometry to the world.
func (sc *Scenario) Build(w *world.World) {
	for _, b := range sc.Boxes {
		w.AddBox(b.Name, cube.Box(b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2]))
	}
}

// NewBody returns an actor body at the spawn point.
func (sc *Scenario) NewBody() *world.Body {
	return world.NewBody(sc.Spawn.Position, sc.Spawn.Width, sc.Spawn.Height)
}

// ApplyParams applies the scenario parameter overrides through the registry.
func (sc *Scenario) ApplyParams(reg *params.Registry) error {
	for name, value := range sc.Params {
		if err := reg.SetString(name, value); err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
	}
	return nil
}
