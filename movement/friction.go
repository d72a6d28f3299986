package movement

import (
	"github.com/chewxy/math32"
)

// updateFriction sets the friction of the body based on whether the actor is sliding, standing still, or moving.
// Friction ramps up linearly over FrictionGainTime after landing so that landing does not kill momentum instantly.
func (s *Simulator) updateFriction(state *LocomotionState, body Body, input InputState) float32 {
	p := s.Params
	var friction float32
	switch {
	case input.Crouch && state.Grounded:
		friction = s.rampFriction(state.TimeSinceGrounded, p.SlideFriction)
	case state.Grounded && input.Move.Len() < MoveInputDeadzone:
		friction = s.rampFriction(state.TimeSinceGrounded, p.BaseFriction)
	}
	body.SetFriction(friction)
	return friction
}

func (s *Simulator) rampFriction(timeGrounded, full float32) float32 {
	gain := s.Params.FrictionGainTime
	if gain <= 0 {
		return full
	}
	return math32.Min(timeGrounded*full/gain, full)
}
