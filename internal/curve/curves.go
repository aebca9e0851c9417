package curve

import (
	"math"

	"vertexfx/internal/geom"
)

// Curve is anything that yields a position for a normalized time t.
type Curve interface {
	At(t float64) geom.Point
}

// Linear interpolates between Start and End.
type Linear struct {
	Start geom.Point `json:"start"`
	End   geom.Point `json:"end"`
}

func (l Linear) At(t float64) geom.Point { return l.Start.Lerp(l.End, t) }

// Point is an alias of At kept for callers that think of a line as a lerp.
func (l Linear) Point(t float64) geom.Point { return l.At(t) }

// GeneratePoints samples the line every step, from Start up to but excluding End.
func (l Linear) GeneratePoints(step float64) ([]geom.Point, error) {
	ts, err := Times(step)
	if err != nil {
		return nil, err
	}
	out := make([]geom.Point, len(ts))
	for i, t := range ts {
		out[i] = l.At(t)
	}
	return out, nil
}

type CircleCurve struct {
	Center geom.Point
	Radius float64
}

func (c CircleCurve) At(t float64) geom.Point { return Circle(c.Center, c.Radius, t) }

type EllipseCurve struct {
	Center geom.Point
	A, B   float64
}

func (e EllipseCurve) At(t float64) geom.Point { return Ellipse(e.Center, e.A, e.B, t) }

type SpiralCurve struct {
	Center geom.Point
	Radius float64
	Height float64
}

func (s SpiralCurve) At(t float64) geom.Point { return Spiral(s.Center, s.Radius, s.Height, t) }

type BezierCurve struct {
	P0, P1, P2 geom.Point
}

func (b BezierCurve) At(t float64) geom.Point { return Bezier(b.P0, b.P1, b.P2, t) }

type CatmullRomCurve struct {
	P0, P1, P2, P3 geom.Point
}

func (c CatmullRomCurve) At(t float64) geom.Point { return CatmullRom(c.P0, c.P1, c.P2, c.P3, t) }

type ArcCurve struct {
	Start, End geom.Point
	Height     float64
}

func (a ArcCurve) At(t float64) geom.Point { return Arc(a.Start, a.End, a.Height, t) }

// WaveCurve plots Wave on the XY plane as (t, value, 0).
type WaveCurve struct {
	Amplitude float64
	Frequency float64
}

func (w WaveCurve) At(t float64) geom.Point {
	return geom.Point{X: t, Y: Wave(w.Amplitude, w.Frequency, t)}
}

// PendulumCurve plots PendulumAngle on the XY plane as (t, angle, 0).
type PendulumCurve struct {
	MaxAngle float64
}

func (p PendulumCurve) At(t float64) geom.Point {
	return geom.Point{X: t, Y: PendulumAngle(p.MaxAngle, t)}
}

// SplineCurve chains Catmull-Rom segments through every point. The first and
// last points are repeated as outer control points, so the curve starts at
// Points[0] (t = 0) and ends at the last point (t = 1). It needs at least two
// points.
type SplineCurve struct {
	Points []geom.Point
}

func (s SplineCurve) At(t float64) geom.Point {
	n := len(s.Points)
	switch n {
	case 0:
		return geom.Zero
	case 1:
		return s.Points[0]
	}
	segs := n - 1
	i := int(math.Floor(t * float64(segs)))
	if i < 0 {
		i = 0
	}
	if i > segs-1 {
		i = segs - 1
	}
	local := t*float64(segs) - float64(i)
	return CatmullRom(s.at(i-1), s.at(i), s.at(i+1), s.at(i+2), local)
}

func (s SplineCurve) at(i int) geom.Point {
	if i < 0 {
		i = 0
	}
	if i >= len(s.Points) {
		i = len(s.Points) - 1
	}
	return s.Points[i]
}

var (
	_ Curve = Linear{}
	_ Curve = CircleCurve{}
	_ Curve = EllipseCurve{}
	_ Curve = SpiralCurve{}
	_ Curve = BezierCurve{}
	_ Curve = CatmullRomCurve{}
	_ Curve = ArcCurve{}
	_ Curve = WaveCurve{}
	_ Curve = PendulumCurve{}
	_ Curve = SplineCurve{}
)
