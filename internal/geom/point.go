package geom

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrNaN is returned by Of when any coordinate is NaN.
	ErrNaN = errors.New("coordinates must not be NaN")
	// ErrTooManyCoords is returned by Of when more than three coordinates are given.
	ErrTooManyCoords = errors.New("a point has at most 3 coordinates")
)

// Point is an immutable point or vector in Cartesian space.
type Point struct {
	X, Y, Z float64
}

// Zero is the origin.
var Zero = Point{}

// Of builds a point from up to three coordinates; missing ones default to 0.
func Of(coords ...float64) (Point, error) {
	if len(coords) > 3 {
		return Point{}, errors.Wrapf(ErrTooManyCoords, "got %d", len(coords))
	}
	var c [3]float64
	for i, v := range coords {
		if math.IsNaN(v) {
			return Point{}, ErrNaN
		}
		c[i] = v
	}
	return Point{X: c[0], Y: c[1], Z: c[2]}, nil
}

// Add returns p + o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }

// Sub returns p - o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

// Mul scales p by m.
func (p Point) Mul(m float64) Point { return Point{p.X * m, p.Y * m, p.Z * m} }

// Div scales p by 1/d. Division by zero follows IEEE-754.
func (p Point) Div(d float64) Point { return Point{p.X / d, p.Y / d, p.Z / d} }

// LengthSquared avoids the square root; use it for comparisons.
func (p Point) LengthSquared() float64 { return p.X*p.X + p.Y*p.Y + p.Z*p.Z }

// Length is the magnitude of p.
func (p Point) Length() float64 { return math.Sqrt(p.LengthSquared()) }

// Normalize returns the unit vector of p. The zero vector is returned as is.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return p.Div(l)
}

// Distance is the Euclidean distance between p and o.
func (p Point) Distance(o Point) float64 {
	dx, dy, dz := p.X-o.X, p.Y-o.Y, p.Z-o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Dot is the scalar product.
func (p Point) Dot(o Point) float64 { return p.X*o.X + p.Y*o.Y + p.Z*o.Z }

// Cross returns a vector perpendicular to both p and o.
func (p Point) Cross(o Point) Point {
	return Point{
		p.Y*o.Z - p.Z*o.Y,
		p.Z*o.X - p.X*o.Z,
		p.X*o.Y - p.Y*o.X,
	}
}

// RotateX rotates p around the X axis by rad radians.
func (p Point) RotateX(rad float64) Point {
	sin, cos := math.Sincos(rad)
	return Point{
		p.X,
		p.Y*cos - p.Z*sin,
		p.Y*sin + p.Z*cos,
	}
}

// RotateY rotates p around the Y axis by rad radians.
func (p Point) RotateY(rad float64) Point {
	sin, cos := math.Sincos(rad)
	return Point{
		p.X*cos + p.Z*sin,
		p.Y,
		-p.X*sin + p.Z*cos,
	}
}

// RotateZ rotates p around the Z axis by rad radians.
func (p Point) RotateZ(rad float64) Point {
	sin, cos := math.Sincos(rad)
	return Point{
		p.X*cos - p.Y*sin,
		p.X*sin + p.Y*cos,
		p.Z,
	}
}

// RotateAround rotates p around pivot using Euler angles in the order
// X (pitch), Y (yaw), Z (roll).
func (p Point) RotateAround(pivot Point, pitch, yaw, roll float64) Point {
	return p.Sub(pivot).RotateX(pitch).RotateY(yaw).RotateZ(roll).Add(pivot)
}

// Lerp interpolates between p (t = 0) and o (t = 1). t is not clamped.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		p.X + (o.X-p.X)*t,
		p.Y + (o.Y-p.Y)*t,
		p.Z + (o.Z-p.Z)*t,
	}
}

// Round rounds every coordinate to the given number of decimal places.
// It is mostly useful to hide float noise such as 1.2e-16 from sin/cos.
func (p Point) Round(places int) Point {
	return Point{round(p.X, places), round(p.Y, places), round(p.Z, places)}
}

func round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow(10, float64(places))
	r := math.Round(v*scale) / scale
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return v
	}
	return r
}

// IsNaN reports whether any coordinate is NaN.
func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z)
}

// IsFinite reports whether no component is NaN or infinite.
func (p Point) IsFinite() bool {
	return finite(p.X) && finite(p.Y) && finite(p.Z)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// MarshalJSON encodes p as a compact [x, y, z] array.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.X, p.Y, p.Z})
}

// UnmarshalJSON accepts [x, y, z] (shorter arrays pad with 0) or {"x":..,"y":..,"z":..}.
func (p *Point) UnmarshalJSON(data []byte) error {
	var arr []float64
	if err := json.Unmarshal(data, &arr); err == nil {
		q, err := Of(arr...)
		if err != nil {
			return err
		}
		*p = q
		return nil
	}
	var obj struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
		Z float64 `json:"z"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Wrap(err, "decode point")
	}
	*p = Point{obj.X, obj.Y, obj.Z}
	return nil
}
