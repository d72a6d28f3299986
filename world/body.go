package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/movement"
)

// Body is a dynamic axis-aligned actor body. Its position is the centre of the bottom face of its box.
type Body struct {
	pos           mgl32.Vec3
	vel           mgl32.Vec3
	width, height float32

	useGravity bool
	friction   float32

	contacts []movement.Contact
}

// NewBody creates a body at pos with the given collider dimensions. Gravity is enabled by default.
func NewBody(pos mgl32.Vec3, width, height float32) *Body {
	return &Body{pos: pos, width: width, height: height, useGravity: true}
}

// Position returns the position of the body.
func (b *Body) Position() mgl32.Vec3 {
	return b.pos
}

// SetPosition teleports the body to pos. Contacts are cleared until the next step.
func (b *Body) SetPosition(pos mgl32.Vec3) {
	b.pos = pos
	b.contacts = b.contacts[:0]
}

// Velocity ...
func (b *Body) Velocity() mgl32.Vec3 {
	return b.vel
}

// SetVelocity ...
func (b *Body) SetVelocity(vel mgl32.Vec3) {
	b.vel = vel
}

// AddVelocityChange ...
func (b *Body) AddVelocityChange(delta mgl32.Vec3) {
	b.vel = b.vel.Add(delta)
}

// SetUseGravity ...
func (b *Body) SetUseGravity(useGravity bool) {
	b.useGravity = useGravity
}

// UsesGravity returns true if gravity is applied to the body.
func (b *Body) UsesGravity() bool {
	return b.useGravity
}

// SetFriction ...
func (b *Body) SetFriction(friction float32) {
	b.friction = friction
}

// Friction returns the friction coefficient of the body.
func (b *Body) Friction() float32 {
	return b.friction
}

// Bounds returns the collider of the body in world space.
func (b *Body) Bounds() cube.BBox {
	return boxAt(b.pos, b.width, b.height)
}

// Contacts returns the contacts found at the end of the last step.
func (b *Body) Contacts() []movement.Contact {
	return b.contacts
}

// grounded returns true if any contact of the last step was a floor.
func (b *Body) grounded() bool {
	for _, c := range b.contacts {
		if c.Normal.Y() > 0.5 {
			return true
		}
	}
	return false
}

func boxAt(pos mgl32.Vec3, width, height float32) cube.BBox {
	h := width / 2
	return cube.Box(pos.X()-h, pos.Y(), pos.Z()-h, pos.X()+h, pos.Y()+height, pos.Z()+h)
}
