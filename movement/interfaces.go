package movement

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// SurfaceID is an opaque identity of a collider in the physics substrate. It is only ever compared for equality.
type SurfaceID uint64

// NoSurface is the SurfaceID of "no surface". Substrates must never hand it out for a real collider.
const NoSurface SurfaceID = 0

// Contact is a single contact point between the actor and another collider.
type Contact struct {
	// Normal is the world-space unit normal of the contact, pointing away from the other collider.
	Normal  mgl32.Vec3
	Surface SurfaceID
}

// RaycastHit is the result of a successful probe.
type RaycastHit struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
	Surface  SurfaceID
}

// ContactProvider supplies the contacts of an actor for the current tick.
type ContactProvider interface {
	Contacts() []Contact
}

// Body is the actor's rigid body in the physics substrate. It is the only sink for velocity changes.
type Body interface {
	Velocity() mgl32.Vec3
	SetVelocity(vel mgl32.Vec3)
	// AddVelocityChange applies an instantaneous, mass-independent change in velocity.
	AddVelocityChange(delta mgl32.Vec3)
	SetUseGravity(useGravity bool)
	// SetFriction sets the friction coefficient of the body's surface material.
	SetFriction(friction float32)
	// Bounds returns the world-space bounds of the body's collider.
	Bounds() cube.BBox
}

// Environment bridges the parts of the physics substrate shared by all actors.
type Environment interface {
	// Gravity returns the ambient gravity acceleration.
	Gravity() mgl32.Vec3
	// Raycast casts a ray from origin along the unit direction, returning the closest hit within maxDistance.
	Raycast(origin, direction mgl32.Vec3, maxDistance float32) (RaycastHit, bool)
}
