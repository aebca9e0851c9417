package scene

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"vertexfx/internal/curve"
	"vertexfx/internal/domain"
	"vertexfx/internal/geom"
)

// DefaultStep applies to entries when neither the entry nor the scene sets a step or count.
const DefaultStep = 0.1

// ErrInvalidScene is returned for malformed scene documents.
var ErrInvalidScene = errors.New("invalid scene")

// Scene is a named set of curves to sample together.
type Scene struct {
	Name    string
	Step    float64
	Entries []Entry
}

// Entry is one curve of a scene along with how to sample it.
type Entry struct {
	Name    string
	Request domain.SampleRequest
}

// Result pairs an entry with its sampled points.
type Result struct {
	Entry  Entry
	Result domain.SampleResult
}

// LoadFile reads and parses the scene file at path.
func LoadFile(path string) (Scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, errors.Wrap(err, "read scene")
	}
	return Load(b)
}

// Load parses a scene document:
//
//	{
//	  "name": "demo",
//	  "step": 0.05,
//	  "curves": [
//	    {"name": "orbit", "kind": "circle", "center": [0, 0, 0], "radius": 2},
//	    {"kind": "bezier", "points": [[0, 0], {"x": 1, "y": 2}, [2]], "count": 20}
//	  ]
//	}
func Load(b []byte) (Scene, error) {
	if !gjson.ValidBytes(b) {
		return Scene{}, errors.Wrap(ErrInvalidScene, "not valid JSON")
	}
	root := gjson.ParseBytes(b)

	sc := Scene{
		Name: root.Get("name").String(),
		Step: root.Get("step").Float(),
	}
	if sc.Step != 0 {
		if err := curve.ValidateStep(sc.Step); err != nil {
			return Scene{}, errors.Wrap(ErrInvalidScene, err.Error())
		}
	}

	curves := root.Get("curves")
	if !curves.IsArray() {
		return Scene{}, errors.Wrap(ErrInvalidScene, "curves must be an array")
	}
	for i, c := range curves.Array() {
		e, err := parseEntry(c, sc.Step)
		if err != nil {
			return Scene{}, errors.Wrapf(ErrInvalidScene, "curve %d: %v", i, err)
		}
		if e.Name == "" {
			e.Name = fmt.Sprintf("%s-%d", e.Request.Spec.Kind, i)
		}
		sc.Entries = append(sc.Entries, e)
	}
	return sc, nil
}

func parseEntry(c gjson.Result, sceneStep float64) (Entry, error) {
	if !c.IsObject() {
		return Entry{}, errors.New("must be an object")
	}
	kind := c.Get("kind").String()
	if kind == "" {
		return Entry{}, errors.New("missing kind")
	}

	spec := curve.Spec{
		Kind:      kind,
		Radius:    c.Get("radius").Float(),
		A:         c.Get("a").Float(),
		B:         c.Get("b").Float(),
		Height:    c.Get("height").Float(),
		Amplitude: c.Get("amplitude").Float(),
		Frequency: c.Get("frequency").Float(),
		MaxAngle:  c.Get("max_angle").Float(),
	}
	if center := c.Get("center"); center.Exists() {
		p, err := parsePoint(center)
		if err != nil {
			return Entry{}, errors.Wrap(err, "center")
		}
		spec.Center = p
	}
	if pts := c.Get("points"); pts.Exists() {
		if !pts.IsArray() {
			return Entry{}, errors.New("points must be an array")
		}
		for j, r := range pts.Array() {
			p, err := parsePoint(r)
			if err != nil {
				return Entry{}, errors.Wrapf(err, "point %d", j)
			}
			spec.Points = append(spec.Points, p)
		}
	}

	req := domain.SampleRequest{
		Spec:      spec,
		Step:      c.Get("step").Float(),
		Count:     int(c.Get("count").Int()),
		Inclusive: c.Get("inclusive").Bool(),
	}
	if r := c.Get("round"); r.Exists() {
		places := int(r.Int())
		req.Round = &places
	}
	if req.Step == 0 && req.Count == 0 {
		req.Step = sceneStep
		if req.Step == 0 {
			req.Step = DefaultStep
		}
	}
	return Entry{Name: c.Get("name").String(), Request: req}, nil
}

// parsePoint accepts [x, y, z] (shorter arrays pad with 0) or {"x":..,"y":..,"z":..}.
func parsePoint(r gjson.Result) (geom.Point, error) {
	switch {
	case r.IsArray():
		arr := r.Array()
		coords := make([]float64, len(arr))
		for i, v := range arr {
			if v.Type != gjson.Number {
				return geom.Point{}, errors.Errorf("coordinate %d is not a number", i)
			}
			coords[i] = v.Float()
		}
		return geom.Of(coords...)
	case r.IsObject():
		return geom.Point{
			X: r.Get("x").Float(),
			Y: r.Get("y").Float(),
			Z: r.Get("z").Float(),
		}, nil
	default:
		return geom.Point{}, errors.New("point must be an array or an object")
	}
}

// Run samples every entry of sc in order and stops at the first failure.
func Run(ctx context.Context, s domain.Sampler, sc Scene) ([]Result, error) {
	out := make([]Result, 0, len(sc.Entries))
	for _, e := range sc.Entries {
		r, err := s.Sample(ctx, e.Request)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %q", e.Name)
		}
		out = append(out, Result{Entry: e, Result: r})
	}
	return out, nil
}
