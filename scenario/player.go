package scenario

import "github.com/oomph-ac/parkour/movement"

// Player turns a scenario timeline into per-tick input.
type Player struct {
	scenario *Scenario
	tick     int
	jumpHeld bool
}

// NewPlayer returns a player positioned at the first tick of the scenario.
func NewPlayer(sc *Scenario) *Player {
	return &Player{scenario: sc}
}

// Tick returns the index of the next tick to be played.
func (p *Player) Tick() int {
	return p.tick
}

// Done returns true once every tick of the scenario has been played.
func (p *Player) Done() bool {
	return p.tick >= p.scenario.Ticks
}

// Rewind moves the player back to the first tick.
func (p *Player) Rewind() {
	p.tick, p.jumpHeld = 0, false
}

// Next returns the input for the current tick and advances. Overlapping steps combine: the last active step with
// a non-zero move wins, look deltas add up and buttons are held if any step holds them.
func (p *Player) Next() movement.InputState {
	in := p.At(p.tick)
	in.JumpPressed = in.Jump && !p.jumpHeld
	p.jumpHeld = in.Jump
	p.tick++
	return in
}

// At returns the held input for a tick, without edge information.
func (p *Player) At(tick int) movement.InputState {
	var in movement.InputState
	for _, s := range p.scenario.Steps {
		if !s.active(tick) {
			continue
		}
		if s.Move.Len() > 0 {
			in.Move = s.Move
		}
		in.Look = in.Look.Add(s.Look)
		in.Jump = in.Jump || s.Jump
		in.Sprint = in.Sprint || s.Sprint
		in.Crouch = in.Crouch || s.Crouch
		in.Fire = in.Fire || s.Fire
	}
	return in
}
