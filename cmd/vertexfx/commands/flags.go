package commands

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"vertexfx/internal/curve"
	"vertexfx/internal/geom"
)

// defaultStep is used when neither --step nor --count is given.
const defaultStep = 0.1

// curveFlags are the shape parameters shared by every command taking a kind.
type curveFlags struct {
	center    string
	points    string
	radius    float64
	a, b      float64
	height    float64
	amplitude float64
	frequency float64
	maxAngle  float64
}

func (f *curveFlags) register(cmd *cobra.Command, radius float64) {
	fl := cmd.Flags()
	fl.StringVar(&f.center, "center", "", "center as x,y,z")
	fl.StringVar(&f.points, "points", "", "control points as x,y,z;x,y,z;...")
	fl.Float64Var(&f.radius, "radius", radius, "circle and spiral radius")
	fl.Float64Var(&f.a, "a", 1, "ellipse semi-axis along X")
	fl.Float64Var(&f.b, "b", 1, "ellipse semi-axis along Z")
	fl.Float64Var(&f.height, "height", 1, "spiral rise or arc bulge")
	fl.Float64Var(&f.amplitude, "amplitude", 1, "wave amplitude")
	fl.Float64Var(&f.frequency, "frequency", 1, "wave frequency")
	fl.Float64Var(&f.maxAngle, "max-angle", 0.5, "pendulum amplitude in radians")
}

func (f *curveFlags) spec(kind string) (curve.Spec, error) {
	s := curve.Spec{
		Kind:      kind,
		Radius:    f.radius,
		A:         f.a,
		B:         f.b,
		Height:    f.height,
		Amplitude: f.amplitude,
		Frequency: f.frequency,
		MaxAngle:  f.maxAngle,
	}
	if f.center != "" {
		c, err := parsePoint(f.center)
		if err != nil {
			return curve.Spec{}, errors.Wrap(err, "--center")
		}
		s.Center = c
	}
	if f.points != "" {
		pts, err := parsePoints(f.points)
		if err != nil {
			return curve.Spec{}, errors.Wrap(err, "--points")
		}
		s.Points = pts
	}
	return s, nil
}

// parsePoint reads "x", "x,y" or "x,y,z".
func parsePoint(s string) (geom.Point, error) {
	parts := strings.Split(s, ",")
	coords := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Point{}, errors.Errorf("bad coordinate %q in %q", p, s)
		}
		coords = append(coords, v)
	}
	return geom.Of(coords...)
}

// parsePoints reads points separated by ';'. Empty entries are skipped.
func parsePoints(s string) ([]geom.Point, error) {
	var out []geom.Point
	for i, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		p, err := parsePoint(part)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		out = append(out, p)
	}
	return out, nil
}
