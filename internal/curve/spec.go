package curve

import (
	"sort"

	"github.com/pkg/errors"

	"vertexfx/internal/geom"
)

var (
	// ErrUnknownKind is returned by Build for a kind it does not know.
	ErrUnknownKind = errors.New("unknown curve kind")
	// ErrMissingPoints is returned by Build when a kind needs more control points.
	ErrMissingPoints = errors.New("not enough control points")
)

// Supported kinds.
const (
	KindArc        = "arc"
	KindBezier     = "bezier"
	KindCatmullRom = "catmull-rom"
	KindCircle     = "circle"
	KindEllipse    = "ellipse"
	KindLine       = "line"
	KindPendulum   = "pendulum"
	KindSpiral     = "spiral"
	KindSpline     = "spline"
	KindWave       = "wave"
)

// Spec is a declarative curve description. Which fields matter depends on Kind:
//
//	line        Points[0] -> Points[1]
//	circle      Center, Radius
//	ellipse     Center, A, B
//	spiral      Center, Radius, Height
//	bezier      Points[0..2]
//	catmull-rom Points[0..3]
//	spline      Points (two or more)
//	arc         Points[0] -> Points[1], Height
//	wave        Amplitude, Frequency
//	pendulum    MaxAngle
type Spec struct {
	Kind      string       `json:"kind"`
	Center    geom.Point   `json:"center"`
	Radius    float64      `json:"radius,omitempty"`
	A         float64      `json:"a,omitempty"`
	B         float64      `json:"b,omitempty"`
	Height    float64      `json:"height,omitempty"`
	Amplitude float64      `json:"amplitude,omitempty"`
	Frequency float64      `json:"frequency,omitempty"`
	MaxAngle  float64      `json:"max_angle,omitempty"`
	Points    []geom.Point `json:"points,omitempty"`
}

type builder struct {
	points int
	build  func(s Spec) Curve
}

var builders = map[string]builder{
	KindLine: {2, func(s Spec) Curve { return Linear{Start: s.Points[0], End: s.Points[1]} }},
	KindCircle: {0, func(s Spec) Curve {
		return CircleCurve{Center: s.Center, Radius: s.Radius}
	}},
	KindEllipse: {0, func(s Spec) Curve {
		return EllipseCurve{Center: s.Center, A: s.A, B: s.B}
	}},
	KindSpiral: {0, func(s Spec) Curve {
		return SpiralCurve{Center: s.Center, Radius: s.Radius, Height: s.Height}
	}},
	KindBezier: {3, func(s Spec) Curve {
		return BezierCurve{P0: s.Points[0], P1: s.Points[1], P2: s.Points[2]}
	}},
	KindCatmullRom: {4, func(s Spec) Curve {
		return CatmullRomCurve{P0: s.Points[0], P1: s.Points[1], P2: s.Points[2], P3: s.Points[3]}
	}},
	KindSpline: {2, func(s Spec) Curve {
		return SplineCurve{Points: append([]geom.Point(nil), s.Points...)}
	}},
	KindArc: {2, func(s Spec) Curve {
		return ArcCurve{Start: s.Points[0], End: s.Points[1], Height: s.Height}
	}},
	KindWave: {0, func(s Spec) Curve {
		return WaveCurve{Amplitude: s.Amplitude, Frequency: s.Frequency}
	}},
	KindPendulum: {0, func(s Spec) Curve { return PendulumCurve{MaxAngle: s.MaxAngle} }},
}

// Build turns s into a Curve.
func Build(s Spec) (Curve, error) {
	b, ok := builders[s.Kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "%q", s.Kind)
	}
	if len(s.Points) < b.points {
		return nil, errors.Wrapf(ErrMissingPoints, "%s needs %d, got %d", s.Kind, b.points, len(s.Points))
	}
	for i, p := range s.Points {
		if p.IsNaN() {
			return nil, errors.Wrapf(geom.ErrNaN, "point %d", i)
		}
	}
	if s.Center.IsNaN() {
		return nil, errors.Wrap(geom.ErrNaN, "center")
	}
	return b.build(s), nil
}

// Kinds lists every kind Build accepts, sorted.
func Kinds() []string {
	out := make([]string, 0, len(builders))
	for k := range builders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
