package omath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/assert"
)

const (
	// normalizeEpsilon is the length under which a vector is treated as having no direction.
	normalizeEpsilon float32 = 1e-5
	// angleEpsilonSqr is the squared-length product under which an angle between two vectors is reported as 0.
	angleEpsilonSqr float32 = 1e-15
	// vecEqualEpsilonSqr is the squared distance under which two vectors compare as equal.
	vecEqualEpsilonSqr float32 = 9.99999944e-11
	// projectionEpsilon is the length a projection basis must exceed.
	projectionEpsilon float32 = 1e-6
)

var (
	Up      = mgl32.Vec3{0, 1, 0}
	Down    = mgl32.Vec3{0, -1, 0}
	Forward = mgl32.Vec3{0, 0, 1}
	Right   = mgl32.Vec3{1, 0, 0}
)

// Clamp clamps the given value to the given range.
func Clamp(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Remap maps value from the range [fromMin, fromMax] onto the range [toMin, toMax]. The result is not clamped.
func Remap(value, fromMin, fromMax, toMin, toMax float32) float32 {
	return toMin + (value-fromMin)*(toMax-toMin)/(fromMax-fromMin)
}

// Sign returns 1 if x is positive or zero, and -1 otherwise.
func Sign(x float32) float32 {
	if x >= 0 {
		return 1
	}
	return -1
}

// ScalarProjection returns the signed length of a's component along b. b must not be a zero vector.
func ScalarProjection(a, b mgl32.Vec3) float32 {
	l := b.Len()
	assert.IsTrue(l > projectionEpsilon, "omath: scalar projection onto zero-length basis %v", b)
	return a.Dot(b) / l
}

// MinByAbsolute returns, per component, whichever of a and b has the smaller absolute value.
func MinByAbsolute(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		MinByAbsoluteFloat(a[0], b[0]),
		MinByAbsoluteFloat(a[1], b[1]),
		MinByAbsoluteFloat(a[2], b[2]),
	}
}

// MaxByAbsolute returns, per component, whichever of a and b has the larger absolute value.
func MaxByAbsolute(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		MaxByAbsoluteFloat(a[0], b[0]),
		MaxByAbsoluteFloat(a[1], b[1]),
		MaxByAbsoluteFloat(a[2], b[2]),
	}
}

// MinByAbsoluteFloat returns whichever of a and b has the smaller absolute value. Ties return b.
func MinByAbsoluteFloat(a, b float32) float32 {
	if math32.Abs(a) < math32.Abs(b) {
		return a
	}
	return b
}

// MaxByAbsoluteFloat returns whichever of a and b has the larger absolute value. Ties return b.
func MaxByAbsoluteFloat(a, b float32) float32 {
	if math32.Abs(a) > math32.Abs(b) {
		return a
	}
	return b
}

// SafeNormalize returns v scaled to unit length, or the zero vector if v is too short to have a direction.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l <= normalizeEpsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// ProjectOnPlane removes the component of v that lies along the plane normal n.
func ProjectOnPlane(v, n mgl32.Vec3) mgl32.Vec3 {
	sqr := n.Dot(n)
	if sqr < math32.SmallestNonzeroFloat32 {
		return v
	}
	return v.Sub(n.Mul(v.Dot(n) / sqr))
}

// Angle returns the unsigned angle in degrees between from and to. If either vector has no length, 0 is returned.
func Angle(from, to mgl32.Vec3) float32 {
	denominator := math32.Sqrt(from.LenSqr() * to.LenSqr())
	if denominator < angleEpsilonSqr {
		return 0
	}
	dot := Clamp(from.Dot(to)/denominator, -1, 1)
	return mgl32.RadToDeg(math32.Acos(dot))
}

// SignedAngle returns the angle in degrees between from and to, signed by which side of axis the rotation from
// from to to falls on.
func SignedAngle(from, to, axis mgl32.Vec3) float32 {
	return Angle(from, to) * Sign(axis.Dot(from.Cross(to)))
}

// ApproxEqual returns true if the distance between a and b is negligible.
func ApproxEqual(a, b mgl32.Vec3) bool {
	return a.Sub(b).LenSqr() < vecEqualEpsilonSqr
}

// Horizontal returns v with its vertical component removed.
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], 0, v[2]}
}

// YawForward returns the horizontal forward direction of a body rotated yaw degrees around the up axis.
func YawForward(yaw float32) mgl32.Vec3 {
	r := mgl32.DegToRad(yaw)
	return mgl32.Vec3{math32.Sin(r), 0, math32.Cos(r)}
}

// YawRight returns the horizontal right direction of a body rotated yaw degrees around the up axis.
func YawRight(yaw float32) mgl32.Vec3 {
	r := mgl32.DegToRad(yaw)
	return mgl32.Vec3{math32.Cos(r), 0, -math32.Sin(r)}
}

// DirectionVector returns the unit look direction for the given yaw and pitch in degrees. A positive pitch looks
// upwards.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		m * math32.Sin(yawRad),
		math32.Sin(pitchRad),
		m * math32.Cos(yawRad),
	}
}

// Round will round a float32 to a given precision.
func Round(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}
