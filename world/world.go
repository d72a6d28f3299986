package world

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/movement"
	"github.com/zeebo/xxh3"
)

// DefaultGravity is the gravity of a new World.
var DefaultGravity = mgl32.Vec3{0, -9.81, 0}

// contactOffset is the distance within which two boxes are considered touching.
const contactOffset = 0.01

// Box is a named static collider. Boxes sharing a name share a surface identity.
type Box struct {
	Name    string
	Surface movement.SurfaceID
	BBox    cube.BBox
}

// World is a static world made of axis-aligned boxes. It implements movement.Environment and steps Bodies through
// it. A World is not safe for concurrent use.
type World struct {
	gravity mgl32.Vec3
	boxes   []Box
	log     *slog.Logger
}

// New creates an empty World with DefaultGravity.
func New(log *slog.Logger) *World {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &World{gravity: DefaultGravity, log: log}
}

// SurfaceID returns the surface identity of a box with the given name.
func SurfaceID(name string) movement.SurfaceID {
	id := movement.SurfaceID(xxh3.HashString(name))
	if id == movement.NoSurface {
		id++
	}
	return id
}

// AddBox adds a static box to the world.
func (w *World) AddBox(name string, bb cube.BBox) Box {
	box := Box{Name: name, Surface: SurfaceID(name), BBox: bb}
	w.boxes = append(w.boxes, box)
	w.log.Debug("added box", "name", name, "surface", uint64(box.Surface), "min", bb.Min(), "max", bb.Max())
	return box
}

// Boxes returns all static boxes of the world.
func (w *World) Boxes() []Box {
	return w.boxes
}

// Gravity ...
func (w *World) Gravity() mgl32.Vec3 {
	return w.gravity
}

// SetGravity ...
func (w *World) SetGravity(g mgl32.Vec3) {
	w.gravity = g
}

// NearbyBoxes returns all boxes intersecting bb.
func (w *World) NearbyBoxes(bb cube.BBox) []Box {
	var list []Box
	for _, box := range w.boxes {
		if box.BBox.IntersectsWith(bb) {
			list = append(list, box)
		}
	}
	return list
}

// Raycast returns the closest box face hit by the ray from origin along direction within maxDistance. Boxes
// containing origin are ignored.
func (w *World) Raycast(origin, direction mgl32.Vec3, maxDistance float32) (movement.RaycastHit, bool) {
	end := origin.Add(direction.Mul(maxDistance))

	var (
		closest movement.RaycastHit
		found   bool
	)
	for _, box := range w.boxes {
		if contains(box.BBox, origin) {
			continue
		}
		res, ok := trace.BBoxIntercept(box.BBox, origin, end)
		if !ok {
			continue
		}
		dist := res.Position().Sub(origin).Len()
		if found && dist >= closest.Distance {
			continue
		}
		closest = movement.RaycastHit{
			Position: res.Position(),
			Normal:   faceNormal(res.Face()),
			Distance: dist,
			Surface:  box.Surface,
		}
		found = true
	}
	return closest, found
}

// Step advances the body by dt seconds: gravity and ground friction are applied, the body is moved and clipped
// against the world, and its contacts are refreshed.
func (w *World) Step(b *Body, dt float32) {
	if b.useGravity {
		b.vel = b.vel.Add(w.gravity.Mul(dt))
	}
	if b.grounded() {
		w.applyFriction(b, dt)
	}

	collisionBB := b.Bounds()
	move := b.vel.Mul(dt)
	bbList := w.NearbyBoxes(collisionBB.Extend(move).Grow(contactOffset))

	yMove, yBlocked, yDepth := sweepAxis(bbList, collisionBB, 1, move.Y())
	collisionBB = collisionBB.Translate(mgl32.Vec3{0, yMove})
	xMove, xBlocked, xDepth := sweepAxis(bbList, collisionBB, 0, move.X())
	collisionBB = collisionBB.Translate(mgl32.Vec3{xMove})
	zMove, zBlocked, zDepth := sweepAxis(bbList, collisionBB, 2, move.Z())
	collisionBB = collisionBB.Translate(mgl32.Vec3{0, 0, zMove})

	// Movement blocked on an axis kills velocity along it.
	if yBlocked {
		b.vel[1] = 0
	}
	if xBlocked {
		b.vel[0] = 0
	}
	if zBlocked {
		b.vel[2] = 0
	}
	penetration := max(yDepth, xDepth, zDepth)
	if penetration > 0 {
		w.log.Debug("body depenetrated", "penetration", penetration)
	}

	b.pos = mgl32.Vec3{
		(collisionBB.Min().X() + collisionBB.Max().X()) * 0.5,
		collisionBB.Min().Y(),
		(collisionBB.Min().Z() + collisionBB.Max().Z()) * 0.5,
	}
	b.contacts = w.contacts(collisionBB, b.contacts[:0])
}

// applyFriction decelerates the horizontal velocity of a grounded body by its friction against gravity, without
// reversing its direction.
func (w *World) applyFriction(b *Body, dt float32) {
	horizontal := mgl32.Vec3{b.vel.X(), 0, b.vel.Z()}
	speed := horizontal.Len()
	if speed == 0 || b.friction <= 0 {
		return
	}
	decel := b.friction * w.gravity.Len() * dt
	scale := math32.Max(speed-decel, 0) / speed
	b.vel[0] *= scale
	b.vel[2] *= scale
}

// contacts appends a contact for every box face that bb is touching.
func (w *World) contacts(bb cube.BBox, dst []movement.Contact) []movement.Contact {
	for _, box := range w.NearbyBoxes(bb.Grow(contactOffset)) {
		o := box.BBox
		for axis := 0; axis < 3; axis++ {
			if !overlapsExcept(bb, o, axis) {
				continue
			}
			normal := mgl32.Vec3{}
			if gap := bb.Min()[axis] - o.Max()[axis]; gap >= -contactOffset && gap <= contactOffset {
				normal[axis] = 1
			} else if gap := o.Min()[axis] - bb.Max()[axis]; gap >= -contactOffset && gap <= contactOffset {
				normal[axis] = -1
			} else {
				continue
			}
			dst = append(dst, movement.Contact{Normal: normal, Surface: box.Surface})
		}
	}
	return dst
}

// overlapsExcept returns true if a and b overlap with positive length on every axis other than skip.
func overlapsExcept(a, b cube.BBox, skip int) bool {
	for axis := 0; axis < 3; axis++ {
		if axis == skip {
			continue
		}
		if a.Max()[axis] <= b.Min()[axis] || b.Max()[axis] <= a.Min()[axis] {
			return false
		}
	}
	return true
}

func contains(bb cube.BBox, v mgl32.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if v[axis] <= bb.Min()[axis] || v[axis] >= bb.Max()[axis] {
			return false
		}
	}
	return true
}

func faceNormal(f cube.Face) mgl32.Vec3 {
	switch f {
	case cube.FaceDown:
		return mgl32.Vec3{0, -1, 0}
	case cube.FaceUp:
		return mgl32.Vec3{0, 1, 0}
	case cube.FaceNorth:
		return mgl32.Vec3{0, 0, -1}
	case cube.FaceSouth:
		return mgl32.Vec3{0, 0, 1}
	case cube.FaceWest:
		return mgl32.Vec3{-1, 0, 0}
	case cube.FaceEast:
		return mgl32.Vec3{1, 0, 0}
	}
	return mgl32.Vec3{}
}
