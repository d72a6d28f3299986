package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
)

// touchEpsilon is the distance under which two box faces are treated as touching rather than overlapping.
const touchEpsilon = 1e-7

// axisClip is the outcome of moving a box along a single axis against one stationary box.
type axisClip struct {
	// move is the movement along the axis that remains after the clip.
	move float32
	// blocked is true if the stationary box stopped or pushed the moving box.
	blocked bool
	// penetration is the overlap along the shallowest axis before the move, if the boxes overlapped.
	penetration float32
}

// clipAxis clips a movement of the moving box along axis so that it does not enter the stationary box. If the boxes
// already overlap and axis is the one of least penetration, the movement instead pushes the moving box out.
func clipAxis(stationary, moving cube.BBox, axis int, move float32) axisClip {
	res := axisClip{move: move}
	if BBHasZeroVolume(stationary) {
		return res
	}

	var depth [3]float32
	var dir [3]float32
	for i := 0; i < 3; i++ {
		below := moving.Max()[i] - stationary.Min()[i]
		above := stationary.Max()[i] - moving.Min()[i]
		if below <= touchEpsilon || above <= touchEpsilon {
			if i != axis {
				// Separated on another axis, so the move along this one can never touch.
				return res
			}
			depth[i] = -1
			continue
		}
		if below < above {
			depth[i], dir[i] = below, -1
		} else {
			depth[i], dir[i] = above, 1
		}
	}

	if depth[axis] >= 0 {
		return resolveOverlap(depth, dir, axis, res)
	}

	switch {
	case move > 0 && moving.Max()[axis] <= stationary.Min()[axis]+touchEpsilon:
		if gap := math32.Max(stationary.Min()[axis]-moving.Max()[axis], 0); move > gap {
			res.move, res.blocked = gap, true
		}
	case move < 0 && moving.Min()[axis] >= stationary.Max()[axis]-touchEpsilon:
		if gap := math32.Min(stationary.Max()[axis]-moving.Min()[axis], 0); move < gap {
			res.move, res.blocked = gap, true
		}
	}
	return res
}

// resolveOverlap pushes an overlapping box out along axis, but only when axis is the shallowest of the three. Ties
// go to the lowest axis so that the box is pushed out once.
func resolveOverlap(depth, dir [3]float32, axis int, res axisClip) axisClip {
	res.penetration = min(depth[0], depth[1], depth[2])
	for i := 0; i < 3; i++ {
		if depth[i] < depth[axis] || i < axis && depth[i] == depth[axis] {
			return res
		}
	}
	if push := depth[axis] * dir[axis]; push > 0 {
		res.move = math32.Max(push, res.move)
	} else {
		res.move = math32.Min(push, res.move)
	}
	res.blocked = true
	return res
}

// sweepAxis moves bb along axis against every box and returns the remaining movement, whether any box blocked it
// and the deepest overlap seen.
func sweepAxis(boxes []Box, bb cube.BBox, axis int, move float32) (float32, bool, float32) {
	var blocked bool
	var penetration float32
	for i := len(boxes) - 1; i >= 0; i-- {
		res := clipAxis(boxes[i].BBox, bb, axis, move)
		move = res.move
		blocked = blocked || res.blocked
		penetration = math32.Max(penetration, res.penetration)
	}
	return move, blocked, penetration
}

// BBHasZeroVolume returns true if the bounding box has zero volume.
func BBHasZeroVolume(bb cube.BBox) bool {
	return bb.Min() == bb.Max()
}
