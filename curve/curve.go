// Package curve implements response curves: an ordered list of control points with a defined interpolation rule
// between them.
package curve

import "github.com/oomph-ac/parkour/oerror"

// Interpolation is the rule used to evaluate a curve between two control points.
type Interpolation string

const (
	// InterpolationLinear draws straight segments between control points.
	InterpolationLinear Interpolation = "linear"
	// InterpolationMonotone draws a monotone cubic Hermite spline (Fritsch-Carlson). It never overshoots the
	// control points, so a monotonic set of points yields a monotonic curve.
	InterpolationMonotone Interpolation = "monotone"
)

// Point is a single control point of a curve.
type Point struct {
	In  float32
	Out float32
}

// Curve maps an input to an output through its control points. Inputs outside the range of the control points
// evaluate to the output of the nearest endpoint.
type Curve struct {
	Interpolation Interpolation
	Points        []Point
}

// New returns a curve with the given interpolation and control points. Points must be ordered by strictly
// increasing input.
func New(interpolation Interpolation, points ...Point) (Curve, error) {
	c := Curve{Interpolation: interpolation, Points: points}
	if err := c.Validate(); err != nil {
		return Curve{}, err
	}
	return c, nil
}

// Linear returns a straight-line curve from (0, from) to (1, to).
func Linear(from, to float32) Curve {
	return Curve{Interpolation: InterpolationLinear, Points: []Point{{0, from}, {1, to}}}
}

// Validate returns an error if the curve cannot be evaluated.
func (c Curve) Validate() error {
	switch c.Interpolation {
	case InterpolationLinear, InterpolationMonotone:
	default:
		return oerror.New("curve: unknown interpolation %q", c.Interpolation)
	}
	if len(c.Points) == 0 {
		return oerror.New("curve: at least one control point is required")
	}
	for i := 1; i < len(c.Points); i++ {
		if c.Points[i].In <= c.Points[i-1].In {
			return oerror.New("curve: control point %d (in=%v) does not follow %v", i, c.Points[i].In, c.Points[i-1].In)
		}
	}
	return nil
}

// Evaluate returns the output of the curve at t. An empty curve evaluates to 0.
func (c Curve) Evaluate(t float32) float32 {
	n := len(c.Points)
	if n == 0 {
		return 0
	}
	first, last := c.Points[0], c.Points[n-1]
	if n == 1 || t <= first.In {
		return first.Out
	}
	if t >= last.In {
		return last.Out
	}

	i := 0
	for t > c.Points[i+1].In {
		i++
	}
	p0, p1 := c.Points[i], c.Points[i+1]
	if t == p1.In {
		return p1.Out
	}

	h := p1.In - p0.In
	s := (t - p0.In) / h
	if c.Interpolation != InterpolationMonotone || n == 2 {
		return p0.Out + (p1.Out-p0.Out)*s
	}

	m0, m1 := c.tangent(i), c.tangent(i+1)
	s2, s3 := s*s, s*s*s
	return (2*s3-3*s2+1)*p0.Out +
		(s3-2*s2+s)*h*m0 +
		(-2*s3+3*s2)*p1.Out +
		(s3-s2)*h*m1
}

// slope returns the secant slope of segment i.
func (c Curve) slope(i int) float32 {
	return (c.Points[i+1].Out - c.Points[i].Out) / (c.Points[i+1].In - c.Points[i].In)
}

// tangent returns the Fritsch-Carlson tangent at control point i.
func (c Curve) tangent(i int) float32 {
	n := len(c.Points)
	switch i {
	case 0:
		return c.slope(0)
	case n - 1:
		return c.slope(n - 2)
	}
	d0, d1 := c.slope(i-1), c.slope(i)
	if d0 == 0 || d1 == 0 || (d0 > 0) != (d1 > 0) {
		return 0
	}
	// Weighted harmonic mean keeps the segment inside the monotonicity region.
	h0 := c.Points[i].In - c.Points[i-1].In
	h1 := c.Points[i+1].In - c.Points[i].In
	w0, w1 := 2*h1+h0, h1+2*h0
	return (w0 + w1) / (w0/d0 + w1/d1)
}
