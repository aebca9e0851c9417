package sample

import (
	"github.com/pkg/errors"

	"vertexfx/internal/curve"
	"vertexfx/internal/geom"
)

// MaxPoints bounds a single sampling call.
const MaxPoints = curve.MaxSamples

var (
	// ErrInvalidCount is returned when a point count is out of range.
	ErrInvalidCount = errors.New("invalid point count")
	// ErrTooManyPoints is returned when a request would exceed MaxPoints.
	ErrTooManyPoints = curve.ErrTooManySamples
)

// Step samples c at t = i*step while t < 1. See curve.Times.
func Step(c curve.Curve, step float64) ([]geom.Point, error) {
	ts, err := curve.Times(step)
	if err != nil {
		return nil, err
	}
	return at(c, ts), nil
}

// Count samples n points at t = i/n, i < n. The point at t = 1 is left out,
// which suits closed curves where it equals the point at t = 0.
func Count(c curve.Curve, n int) ([]geom.Point, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "count must be > 0, got %d", n)
	}
	if n > MaxPoints {
		return nil, errors.Wrapf(ErrTooManyPoints, "count %d", n)
	}
	out := make([]geom.Point, n)
	for i := range out {
		out[i] = c.At(float64(i) / float64(n))
	}
	return out, nil
}

// Inclusive samples n >= 2 points evenly from t = 0 to t = 1, both ends included.
func Inclusive(c curve.Curve, n int) ([]geom.Point, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrInvalidCount, "inclusive count must be >= 2, got %d", n)
	}
	if n > MaxPoints {
		return nil, errors.Wrapf(ErrTooManyPoints, "count %d", n)
	}
	out := make([]geom.Point, n)
	last := float64(n - 1)
	for i := range out {
		out[i] = c.At(float64(i) / last)
	}
	return out, nil
}

// Length is the length of the polyline through pts.
func Length(pts []geom.Point) float64 {
	var l float64
	for i := 1; i < len(pts); i++ {
		l += pts[i-1].Distance(pts[i])
	}
	return l
}

// Round rounds every point to places decimals, in place, and returns pts.
func Round(pts []geom.Point, places int) []geom.Point {
	for i := range pts {
		pts[i] = pts[i].Round(places)
	}
	return pts
}

func at(c curve.Curve, ts []float64) []geom.Point {
	out := make([]geom.Point, len(ts))
	for i, t := range ts {
		out[i] = c.At(t)
	}
	return out
}
