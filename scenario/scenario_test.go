package scenario

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/camera"
	"github.com/oomph-ac/parkour/movement"
	"github.com/oomph-ac/parkour/params"
	"github.com/oomph-ac/parkour/world"
)

const wallRun = `
name: wall-run
description: sprint alongside a wall and jump onto it
ticks: 120
spawn:
  position: [0, 0, 0]
  yaw: 0
boxes:
  - name: floor
    min: [-20, -1, -20]
    max: [20, 0, 40]
  - name: wall
    min: [1, 0, 2]
    max: [2, 6, 40]
params:
  WallRunLimit: "1"
  SpaceToStartWallRun: "true"
steps:
  - at: 0
    for: 100
    move: [0, 1]
    sprint: true
  - at: 20
    for: 10
    move: [1, 1]
    jump: true
  - at: 40
    look: [5, 0]
`

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(wallRun))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sc.Name != "wall-run" || sc.Ticks != 120 || len(sc.Boxes) != 2 || len(sc.Steps) != 3 {
		t.Fatalf("unexpected scenario %+v", sc)
	}
	if sc.Spawn.Width != defaultWidth || sc.Spawn.Height != defaultHeight {
		t.Fatalf("expected default actor size, got %vx%v", sc.Spawn.Width, sc.Spawn.Height)
	}
	if sc.Steps[2].For != 1 {
		t.Fatalf("expected a step without a length to last one tick, got %v", sc.Steps[2].For)
	}
	if sc.Boxes[1].Max != (mgl32.Vec3{2, 6, 40}) {
		t.Fatalf("unexpected wall bounds %v", sc.Boxes[1].Max)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	for name, data := range map[string]string{
		"no name":       "ticks: 10\n",
		"no ticks":      "name: a\n",
		"flat box":      "name: a\nticks: 1\nboxes:\n  - name: b\n    min: [0, 0, 0]\n    max: [1, 0, 1]\n",
		"duplicate box": "name: a\nticks: 1\nboxes:\n  - {name: b, min: [0, 0, 0], max: [1, 1, 1]}\n  - {name: b, min: [0, 0, 0], max: [1, 1, 1]}\n",
		"short vector":  "name: a\nticks: 1\nspawn:\n  position: [0, 1]\n",
		"negative step": "name: a\nticks: 1\nsteps:\n  - at: -1\n",
	} {
		if _, err := Parse([]byte(data)); err == nil {
			t.Fatalf("expected %s to be rejected", name)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wall-run.yaml")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected missing file to fail")
	}
	if err := os.WriteFile(path, []byte(wallRun), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
}

func TestBuild(t *testing.T) {
	sc, err := Parse([]byte(wallRun))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	w := world.New(slog.New(slog.DiscardHandler))
	sc.Build(w)
	boxes := w.Boxes()
	if len(boxes) != 2 || boxes[1].Name != "wall" || boxes[1].Surface != world.SurfaceID("wall") {
		t.Fatalf("unexpected world boxes %+v", boxes)
	}

	b := sc.NewBody()
	if b.Position() != sc.Spawn.Position {
		t.Fatalf("expected body at spawn, got %v", b.Position())
	}
}

func TestApplyParams(t *testing.T) {
	sc, err := Parse([]byte(wallRun))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := movement.DefaultParameters()
	c := camera.DefaultSettings()
	if err := sc.ApplyParams(params.Bind(&m, &c, nil)); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if m.WallRunLimit != 1 || !m.SpaceToStartWallRun {
		t.Fatalf("expected overrides to be applied, got %+v", m)
	}

	sc.Params = map[string]string{"NoSuchParam": "1"}
	if err := sc.ApplyParams(params.Bind(&m, &c, nil)); err == nil {
		t.Fatalf("expected an unknown parameter to fail")
	}
}

func TestPlayer(t *testing.T) {
	sc, err := Parse([]byte(wallRun))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	p := NewPlayer(sc)

	var inputs []movement.InputState
	for !p.Done() {
		inputs = append(inputs, p.Next())
	}
	if len(inputs) != sc.Ticks || p.Tick() != sc.Ticks {
		t.Fatalf("expected %d inputs, got %d", sc.Ticks, len(inputs))
	}

	if in := inputs[0]; in.Move != (mgl32.Vec2{0, 1}) || !in.Sprint || in.Jump {
		t.Fatalf("unexpected first input %+v", in)
	}
	if in := inputs[20]; in.Move != (mgl32.Vec2{1, 1}) || !in.Sprint || !in.Jump || !in.JumpPressed {
		t.Fatalf("expected the later step to win the move and press jump, got %+v", in)
	}
	if in := inputs[21]; !in.Jump || in.JumpPressed {
		t.Fatalf("expected jump to be held without a new press, got %+v", in)
	}
	if in := inputs[30]; in.Jump || in.Move != (mgl32.Vec2{0, 1}) {
		t.Fatalf("expected the jump step to have ended, got %+v", in)
	}
	if in := inputs[40]; in.Look != (mgl32.Vec2{5, 0}) || in.Move != (mgl32.Vec2{0, 1}) {
		t.Fatalf("expected a look step to keep the move of the running step, got %+v", in)
	}
	if in := inputs[41]; in.Look != (mgl32.Vec2{}) {
		t.Fatalf("expected the look step to last one tick, got %+v", in)
	}
	if in := inputs[110]; in != (movement.InputState{}) {
		t.Fatalf("expected no input after the timeline, got %+v", in)
	}

	p.Rewind()
	if p.Tick() != 0 || p.Done() {
		t.Fatalf("expected rewind to restart the timeline")
	}
}

func TestBuiltin(t *testing.T) {
	scenarios, err := Builtin()
	if err != nil {
		t.Fatalf("builtin: %v", err)
	}
	if len(scenarios) != 5 {
		t.Fatalf("expected 5 bundled scenarios, got %d", len(scenarios))
	}

	m := movement.DefaultParameters()
	c := camera.DefaultSettings()
	reg := params.Bind(&m, &c, nil)
	for _, sc := range scenarios {
		if err := sc.ApplyParams(reg); err != nil {
			t.Fatalf("%s: %v", sc.Name, err)
		}
	}

	sc, err := Lookup("wall-run")
	if err != nil || sc.Name != "wall-run" {
		t.Fatalf("expected to find the wall-run scenario, got %v", err)
	}
	if _, err := Lookup("moon-walk"); err == nil {
		t.Fatalf("expected an unknown scenario to fail")
	}
}
