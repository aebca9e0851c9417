package preview

import (
	"fmt"
	"math"

	"vertexfx/internal/curve"
	"vertexfx/internal/geom"
	"vertexfx/internal/sample"
)

// cellAspect compensates for terminal cells being about twice as tall as wide.
// Only renderers that project two axes apply it.
const cellAspect = 2

// orbitRound hides sin/cos noise on the dots of an orbit.
const orbitRound = 13

// Status describes the moving item after a frame was rendered.
type Status struct {
	T        float64
	Position geom.Point
}

// Renderer draws one frame for the animator's current state.
type Renderer interface {
	Render(c *Canvas, a Animator) Status
}

// Plane selects which two axes a renderer projects onto the canvas.
type Plane int

const (
	// PlaneXY draws X to the right and Y up.
	PlaneXY Plane = iota
	// PlaneXZ draws X to the right and Z down, looking at the XZ plane from above.
	PlaneXZ
)

// LinePreview draws a line along X as tick marks with their values, a
// baseline and the current position. It has a single axis, so Scale is
// columns per unit with no aspect correction.
type LinePreview struct {
	Line curve.Linear
}

func (l LinePreview) Render(c *Canvas, a Animator) Status {
	offset := -l.Line.Start.X
	col := func(x float64) int { return int((x + offset) * a.Scale) }

	if pts, err := l.Line.GeneratePoints(a.Step); err == nil {
		free := math.MinInt
		for _, p := range pts {
			x := col(p.X)
			c.Plot(x, 0, '|')
			if x >= free {
				label := fmt.Sprintf("%.2f", p.X)
				c.Text(x, 2, label)
				free = x + len(label) + 1
			}
		}
	}
	c.HLine(0, col(l.Line.End.X), 1, '-')

	m := l.Line.At(a.T)
	c.Plot(col(m.X), 1, '#')
	return Status{T: a.T, Position: m}
}

// OrbitPreview draws a circle as Samples() dots on the XZ plane plus the
// current position.
type OrbitPreview struct {
	Center geom.Point
	Radius float64
}

func (o OrbitPreview) Render(c *Canvas, a Animator) Status {
	n := a.Samples()
	pts := make([]geom.Point, 0, n)
	for i := 0; i < n; i++ {
		pts = append(pts, curve.Circle(o.Center, o.Radius, float64(i)/float64(n)).Round(orbitRound))
	}
	m := curve.Circle(o.Center, o.Radius, a.T)

	r := o.Radius
	bounds := box{
		min: geom.Point{X: o.Center.X - r, Z: o.Center.Z - r},
		max: geom.Point{X: o.Center.X + r, Z: o.Center.Z + r},
	}
	proj := newProjection(bounds, PlaneXZ, a.Scale)
	for _, p := range pts {
		x, y := proj.cell(p)
		c.Plot(x, y, '*')
	}
	x, y := proj.cell(m)
	c.Plot(x, y, '@')
	return Status{T: a.T, Position: m}
}

// CurvePreview draws any curve sampled at the animator's step, fitted to the
// top-left corner of the canvas.
type CurvePreview struct {
	Curve curve.Curve
	Plane Plane
}

func (cp CurvePreview) Render(c *Canvas, a Animator) Status {
	m := cp.Curve.At(a.T)
	pts, err := sample.Step(cp.Curve, a.Step)
	if err != nil {
		pts = nil
	}

	bounds := bbox(append(pts, m))
	proj := newProjection(bounds, cp.Plane, a.Scale)
	for _, p := range pts {
		x, y := proj.cell(p)
		c.Plot(x, y, '*')
	}
	x, y := proj.cell(m)
	c.Plot(x, y, '@')
	return Status{T: a.T, Position: m}
}

type box struct {
	min, max geom.Point
}

func bbox(pts []geom.Point) box {
	if len(pts) == 0 {
		return box{}
	}
	b := box{min: pts[0], max: pts[0]}
	for _, p := range pts[1:] {
		b.min = geom.Point{X: math.Min(b.min.X, p.X), Y: math.Min(b.min.Y, p.Y), Z: math.Min(b.min.Z, p.Z)}
		b.max = geom.Point{X: math.Max(b.max.X, p.X), Y: math.Max(b.max.Y, p.Y), Z: math.Max(b.max.Z, p.Z)}
	}
	return b
}

// projection maps world coordinates to canvas cells with one cell of margin.
type projection struct {
	b     box
	plane Plane
	scale float64
}

func newProjection(b box, plane Plane, scale float64) projection {
	return projection{b: b, plane: plane, scale: scale}
}

func (p projection) cell(pt geom.Point) (int, int) {
	x := 1 + int((pt.X-p.b.min.X)*p.scale*cellAspect)
	if p.plane == PlaneXZ {
		return x, 1 + int((pt.Z-p.b.min.Z)*p.scale)
	}
	return x, 1 + int((p.b.max.Y-pt.Y)*p.scale)
}
