package curve_test

import (
	"math"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vertexfx/internal/curve"
	"vertexfx/internal/geom"
)

const eps = 1e-9

func assertPoint(t *testing.T, want, got geom.Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func TestCircle(t *testing.T) {
	c := geom.Point{X: 1, Y: 2, Z: 3}
	assertPoint(t, geom.Point{X: 3, Y: 2, Z: 3}, curve.Circle(c, 2, 0))
	assertPoint(t, geom.Point{X: 1, Y: 2, Z: 5}, curve.Circle(c, 2, 0.25))
	assertPoint(t, geom.Point{X: -1, Y: 2, Z: 3}, curve.Circle(c, 2, 0.5))
	assertPoint(t, curve.Circle(c, 2, 0), curve.Circle(c, 2, 1))

	for _, tt := range []float64{0.1, 0.33, 0.7} {
		assert.InDelta(t, 2.0, curve.Circle(c, 2, tt).Distance(c), eps)
	}
}

func TestEllipse(t *testing.T) {
	c := geom.Point{}
	assertPoint(t, geom.Point{X: 3}, curve.Ellipse(c, 3, 1, 0))
	assertPoint(t, geom.Point{Z: 1}, curve.Ellipse(c, 3, 1, 0.25))
	assertPoint(t, geom.Point{X: -3}, curve.Ellipse(c, 3, 1, 0.5))
}

func TestSpiral(t *testing.T) {
	c := geom.Point{X: 1, Y: 1, Z: 1}
	assertPoint(t, geom.Point{X: 2, Y: 1, Z: 1}, curve.Spiral(c, 1, 10, 0))
	// five turns: t = 0.1 is half a turn
	assertPoint(t, geom.Point{X: 0, Y: 2, Z: 1}, curve.Spiral(c, 1, 10, 0.1))
	assertPoint(t, geom.Point{X: 2, Y: 11, Z: 1}, curve.Spiral(c, 1, 10, 1))
}

func TestScalarCurves(t *testing.T) {
	assert.InDelta(t, 30.0, curve.PendulumAngle(30, 0), eps)
	assert.InDelta(t, 0.0, curve.PendulumAngle(30, 0.25), eps)
	assert.InDelta(t, -30.0, curve.PendulumAngle(30, 0.5), eps)

	assert.InDelta(t, 2.0, curve.Wave(2, 1, 0.25), eps)
	assert.InDelta(t, 0.0, curve.Wave(2, 2, 0.25), eps)
	assert.InDelta(t, -2.0, curve.Wave(2, 1, 0.75), eps)

	p := curve.WaveCurve{Amplitude: 2, Frequency: 1}.At(0.25)
	assertPoint(t, geom.Point{X: 0.25, Y: 2}, p)
	p = curve.PendulumCurve{MaxAngle: 1}.At(0.5)
	assertPoint(t, geom.Point{X: 0.5, Y: -1}, p)
}

func TestBezier(t *testing.T) {
	p0 := geom.Point{}
	p1 := geom.Point{X: 1, Y: 2}
	p2 := geom.Point{X: 2}

	assertPoint(t, p0, curve.Bezier(p0, p1, p2, 0))
	assertPoint(t, p2, curve.Bezier(p0, p1, p2, 1))
	assertPoint(t, geom.Point{X: 1, Y: 1}, curve.Bezier(p0, p1, p2, 0.5))
}

func TestCatmullRom(t *testing.T) {
	p0 := geom.Point{X: 0, Y: 1}
	p1 := geom.Point{X: 1, Y: 3}
	p2 := geom.Point{X: 2, Y: -1, Z: 4}
	p3 := geom.Point{X: 3, Y: 0}

	assertPoint(t, p1, curve.CatmullRom(p0, p1, p2, p3, 0))
	assertPoint(t, p2, curve.CatmullRom(p0, p1, p2, p3, 1))

	// evenly spaced collinear points give uniform motion
	a, b, c, d := geom.Point{X: 0}, geom.Point{X: 1}, geom.Point{X: 2}, geom.Point{X: 3}
	assertPoint(t, geom.Point{X: 1.5}, curve.CatmullRom(a, b, c, d, 0.5))
	assertPoint(t, geom.Point{X: 1.25}, curve.CatmullRom(a, b, c, d, 0.25))
}

func TestArc(t *testing.T) {
	start := geom.Point{}
	end := geom.Point{X: 4}

	assertPoint(t, start, curve.Arc(start, end, 2, 0))
	assertPoint(t, end, curve.Arc(start, end, 2, 1))
	assertPoint(t, geom.Point{X: 2, Y: 1}, curve.Arc(start, end, 2, 0.5))
}

func TestSpline(t *testing.T) {
	pts := []geom.Point{{X: 0}, {X: 1, Y: 1}, {X: 2}}
	s := curve.SplineCurve{Points: pts}

	assertPoint(t, pts[0], s.At(0))
	assertPoint(t, pts[1], s.At(0.5))
	assertPoint(t, pts[2], s.At(1))

	assert.Equal(t, geom.Zero, curve.SplineCurve{}.At(0.3))
	assert.Equal(t, pts[1], curve.SplineCurve{Points: pts[1:2]}.At(0.3))
}

func TestLinear_Point(t *testing.T) {
	l := curve.Linear{Start: geom.Point{X: 0}, End: geom.Point{X: 25}}
	assert.Equal(t, geom.Point{X: 12.5}, l.Point(0.5))
	assert.Equal(t, l.At(0.3), l.Point(0.3))
}

func TestLinear_GeneratePoints(t *testing.T) {
	l := curve.Linear{Start: geom.Point{X: 0}, End: geom.Point{X: 25}}

	pts, err := l.GeneratePoints(0.25)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 0}, {X: 6.25}, {X: 12.5}, {X: 18.75}}, pts)

	pts, err = l.GeneratePoints(1)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 0}}, pts)

	pts, err = l.GeneratePoints(0.1)
	require.NoError(t, err)
	require.Len(t, pts, 10)
	assert.InDelta(t, 22.5, pts[9].X, eps)
	for _, p := range pts {
		assert.Less(t, p.X, 25.0, "end point is excluded")
	}
}

func TestLinear_GeneratePoints_InvalidStep(t *testing.T) {
	l := curve.Linear{End: geom.Point{X: 1}}
	for _, step := range []float64{0, -0.5, 1.0001, 2, math.NaN(), math.Inf(1)} {
		_, err := l.GeneratePoints(step)
		assert.Truef(t, errors.Is(err, curve.ErrInvalidStep), "step %v", step)
	}
}

func TestLinear_GeneratePoints_TooManyPoints(t *testing.T) {
	l := curve.Linear{End: geom.Point{X: 1}}
	for _, step := range []float64{1e-300, math.SmallestNonzeroFloat64, 1.0 / (curve.MaxSamples + 1)} {
		_, err := l.GeneratePoints(step)
		assert.Truef(t, errors.Is(err, curve.ErrTooManySamples), "step %v", step)
	}

	pts, err := l.GeneratePoints(1.0 / curve.MaxSamples)
	require.NoError(t, err)
	assert.Len(t, pts, curve.MaxSamples)
}

func TestTimes(t *testing.T) {
	ts, err := curve.Times(0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5}, ts)

	ts, err = curve.Times(0.3)
	require.NoError(t, err)
	assert.Len(t, ts, 4)
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		spec curve.Spec
		t    float64
		want geom.Point
	}{
		{"line", curve.Spec{Kind: curve.KindLine, Points: []geom.Point{{}, {X: 10}}}, 0.5, geom.Point{X: 5}},
		{"circle", curve.Spec{Kind: curve.KindCircle, Radius: 2}, 0, geom.Point{X: 2}},
		{"ellipse", curve.Spec{Kind: curve.KindEllipse, A: 3, B: 1}, 0.25, geom.Point{Z: 1}},
		{"spiral", curve.Spec{Kind: curve.KindSpiral, Radius: 1, Height: 4}, 1, geom.Point{X: 1, Y: 4}},
		{"bezier", curve.Spec{Kind: curve.KindBezier, Points: []geom.Point{{}, {X: 1, Y: 2}, {X: 2}}}, 0.5, geom.Point{X: 1, Y: 1}},
		{"catmull-rom", curve.Spec{Kind: curve.KindCatmullRom, Points: []geom.Point{{}, {X: 1}, {X: 2}, {X: 3}}}, 0.5, geom.Point{X: 1.5}},
		{"spline", curve.Spec{Kind: curve.KindSpline, Points: []geom.Point{{}, {X: 2}}}, 1, geom.Point{X: 2}},
		{"arc", curve.Spec{Kind: curve.KindArc, Points: []geom.Point{{}, {X: 4}}, Height: 2}, 0.5, geom.Point{X: 2, Y: 1}},
		{"wave", curve.Spec{Kind: curve.KindWave, Amplitude: 2, Frequency: 1}, 0.25, geom.Point{X: 0.25, Y: 2}},
		{"pendulum", curve.Spec{Kind: curve.KindPendulum, MaxAngle: 45}, 0, geom.Point{Y: 45}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := curve.Build(tc.spec)
			require.NoError(t, err)
			assertPoint(t, tc.want, c.At(tc.t))
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	_, err := curve.Build(curve.Spec{Kind: "hexagon"})
	assert.True(t, errors.Is(err, curve.ErrUnknownKind))

	_, err = curve.Build(curve.Spec{Kind: curve.KindBezier, Points: []geom.Point{{}, {}}})
	assert.True(t, errors.Is(err, curve.ErrMissingPoints))
	assert.Contains(t, err.Error(), "bezier needs 3, got 2")

	_, err = curve.Build(curve.Spec{Kind: curve.KindCircle, Center: geom.Point{X: math.NaN()}})
	assert.True(t, errors.Is(err, geom.ErrNaN))
}

func TestBuild_SplineCopiesPoints(t *testing.T) {
	pts := []geom.Point{{}, {X: 2}}
	c, err := curve.Build(curve.Spec{Kind: curve.KindSpline, Points: pts})
	require.NoError(t, err)
	pts[1] = geom.Point{X: 100}
	assertPoint(t, geom.Point{X: 2}, c.At(1))
}

func TestKinds(t *testing.T) {
	kinds := curve.Kinds()
	assert.True(t, sort.StringsAreSorted(kinds))
	assert.Contains(t, kinds, curve.KindCatmullRom)
	assert.Len(t, kinds, 10)
}
