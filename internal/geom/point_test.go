package geom_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vertexfx/internal/geom"
)

const eps = 1e-9

func assertPoint(t *testing.T, want, got geom.Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func TestOf(t *testing.T) {
	p, err := geom.Of(1)
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 1}, p)

	p, err = geom.Of(1, 2)
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 1, Y: 2}, p)

	p, err = geom.Of()
	require.NoError(t, err)
	assert.Equal(t, geom.Zero, p)

	_, err = geom.Of(1, math.NaN(), 3)
	assert.True(t, errors.Is(err, geom.ErrNaN))

	_, err = geom.Of(1, 2, 3, 4)
	assert.True(t, errors.Is(err, geom.ErrTooManyCoords))
}

func TestArithmetic(t *testing.T) {
	a := geom.Point{X: 1, Y: 2, Z: 3}
	b := geom.Point{X: 4, Y: -5, Z: 6}

	assert.Equal(t, geom.Point{X: 5, Y: -3, Z: 9}, a.Add(b))
	assert.Equal(t, geom.Point{X: -3, Y: 7, Z: -3}, a.Sub(b))
	assert.Equal(t, geom.Point{X: 2, Y: 4, Z: 6}, a.Mul(2))
	assert.Equal(t, geom.Point{X: 0.5, Y: 1, Z: 1.5}, a.Div(2))
	assert.Equal(t, 14.0, a.LengthSquared())
	assert.InDelta(t, math.Sqrt(14), a.Length(), eps)
	assert.Equal(t, 12.0, a.Dot(b))
	assert.Equal(t, geom.Point{X: 27, Y: 6, Z: -13}, a.Cross(b))

	// receiver is untouched
	assert.Equal(t, geom.Point{X: 1, Y: 2, Z: 3}, a)
}

func TestDistance(t *testing.T) {
	a := geom.Point{X: 1, Y: 1, Z: 1}
	b := geom.Point{X: 4, Y: 5, Z: 1}
	assert.InDelta(t, 5.0, a.Distance(b), eps)
	assert.InDelta(t, 5.0, b.Distance(a), eps)
	assert.Equal(t, 0.0, a.Distance(a))
}

func TestNormalize(t *testing.T) {
	n := geom.Point{X: 3, Y: 0, Z: 4}.Normalize()
	assertPoint(t, geom.Point{X: 0.6, Z: 0.8}, n)
	assert.InDelta(t, 1.0, n.Length(), eps)

	assert.Equal(t, geom.Zero, geom.Zero.Normalize())
}

func TestRotations(t *testing.T) {
	half := math.Pi / 2

	assertPoint(t, geom.Point{X: 1, Y: 0, Z: 1}, geom.Point{X: 1, Y: 1, Z: 0}.RotateX(half))
	assertPoint(t, geom.Point{X: 0, Y: 1, Z: -1}, geom.Point{X: 1, Y: 1, Z: 0}.RotateY(half))
	assertPoint(t, geom.Point{X: -1, Y: 1, Z: 0}, geom.Point{X: 1, Y: 1, Z: 0}.RotateZ(half))

	// a full turn is the identity
	p := geom.Point{X: 1.5, Y: -2, Z: 0.25}
	assertPoint(t, p, p.RotateX(2*math.Pi).RotateY(2*math.Pi).RotateZ(2*math.Pi))
}

func TestRotateAround(t *testing.T) {
	pivot := geom.Point{X: 1, Y: 1, Z: 0}
	p := geom.Point{X: 2, Y: 1, Z: 0}

	assertPoint(t, geom.Point{X: 1, Y: 2, Z: 0}, p.RotateAround(pivot, 0, 0, math.Pi/2))
	assertPoint(t, p, p.RotateAround(pivot, 0, 0, 0))
	assertPoint(t, pivot, pivot.RotateAround(pivot, 1, 2, 3))
}

func TestLerp(t *testing.T) {
	a := geom.Point{}
	b := geom.Point{X: 10, Y: -20, Z: 30}

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, geom.Point{X: 5, Y: -10, Z: 15}, a.Lerp(b, 0.5))
	assert.Equal(t, geom.Point{X: 20, Y: -40, Z: 60}, a.Lerp(b, 2), "t is not clamped")
}

func TestRound(t *testing.T) {
	p := geom.Point{X: 1.23456, Y: -1.23456, Z: 1.2e-16}
	assert.Equal(t, geom.Point{X: 1.23, Y: -1.23, Z: 0}, p.Round(2))
	assert.Equal(t, geom.Point{X: 1, Y: -1, Z: 0}, p.Round(0))
	assert.Equal(t, geom.Point{X: 100}, geom.Point{X: 149}.Round(-2))

	inf := geom.Point{X: math.Inf(1)}
	assert.True(t, math.IsInf(inf.Round(3).X, 1))
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(geom.Point{X: 1, Y: 2.5, Z: -3})
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2.5, -3]`, string(b))

	var p geom.Point
	require.NoError(t, json.Unmarshal([]byte(`[4, 5]`), &p))
	assert.Equal(t, geom.Point{X: 4, Y: 5}, p)

	require.NoError(t, json.Unmarshal([]byte(`{"x": 1, "z": 2}`), &p))
	assert.Equal(t, geom.Point{X: 1, Z: 2}, p)

	assert.Error(t, json.Unmarshal([]byte(`[1, 2, 3, 4]`), &p))
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &p))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, geom.Point{X: 1, Y: -2, Z: math.MaxFloat64}.IsFinite())
	assert.False(t, geom.Point{Y: math.Inf(-1)}.IsFinite())
	assert.False(t, geom.Point{Z: math.NaN()}.IsFinite())

	far := geom.Point{X: -1e308}.Lerp(geom.Point{X: 1e308}, 0.5)
	assert.False(t, far.IsFinite(), "the difference overflows")
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1, 2.5, -3)", geom.Point{X: 1, Y: 2.5, Z: -3}.String())
}
