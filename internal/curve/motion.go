package curve

import (
	"math"

	"vertexfx/internal/geom"
)

const tau = 2 * math.Pi

// spiralTurns is the number of revolutions a Spiral makes over t in [0, 1].
const spiralTurns = 5

// Circle returns the point at t on a circle of radius r around c in the XZ plane.
func Circle(c geom.Point, r, t float64) geom.Point {
	sin, cos := math.Sincos(t * tau)
	return geom.Point{X: c.X + r*cos, Y: c.Y, Z: c.Z + r*sin}
}

// Ellipse returns the point at t on an ellipse around c in the XZ plane with
// horizontal radius a (X) and vertical radius b (Z).
func Ellipse(c geom.Point, a, b, t float64) geom.Point {
	sin, cos := math.Sincos(t * tau)
	return geom.Point{X: c.X + a*cos, Y: c.Y, Z: c.Z + b*sin}
}

// Spiral returns the point at t on a helix of radius r around c rising by h in total.
func Spiral(c geom.Point, r, h, t float64) geom.Point {
	sin, cos := math.Sincos(t * spiralTurns * tau)
	return geom.Point{X: c.X + r*cos, Y: c.Y + h*t, Z: c.Z + r*sin}
}

// PendulumAngle is the oscillation angle of a pendulum swinging up to maxAngle.
// The unit of maxAngle (degrees or radians) carries through.
func PendulumAngle(maxAngle, t float64) float64 {
	return maxAngle * math.Cos(t*tau)
}

// Wave is a sine wave with the given peak amplitude and cycles per unit of t.
func Wave(amplitude, frequency, t float64) float64 {
	return amplitude * math.Sin(t*frequency*tau)
}

// Bezier evaluates the quadratic Bezier curve p0 -> p2 with control point p1.
func Bezier(p0, p1, p2 geom.Point, t float64) geom.Point {
	u := 1 - t
	a, b, c := u*u, 2*u*t, t*t
	return geom.Point{
		X: a*p0.X + b*p1.X + c*p2.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y,
		Z: a*p0.Z + b*p1.Z + c*p2.Z,
	}
}

// CatmullRom evaluates the uniform Catmull-Rom segment between p1 and p2,
// using p0 and p3 as the neighbouring control points.
func CatmullRom(p0, p1, p2, p3 geom.Point, t float64) geom.Point {
	return geom.Point{
		X: catmullRom(p0.X, p1.X, p2.X, p3.X, t),
		Y: catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, t),
		Z: catmullRom(p0.Z, p1.Z, p2.Z, p3.Z, t),
	}
}

func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * (2*p1 +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

// Arc moves from start to end along a Bezier whose control point is the
// midpoint raised by height on the Y axis.
func Arc(start, end geom.Point, height, t float64) geom.Point {
	return Bezier(start, arcControl(start, end, height), end, t)
}

func arcControl(start, end geom.Point, height float64) geom.Point {
	return start.Add(end).Mul(0.5).Add(geom.Point{Y: height})
}
