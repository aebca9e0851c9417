package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"vertexfx/internal/curve"
	"vertexfx/internal/geom"
	"vertexfx/internal/preview"
)

// Terminal cells are far larger than the desktop preview's pixels, so the
// CLI starts from smaller scales than preview.DefaultScale.
const (
	lineScale  = 12
	curveScale = 2
)

// preview <line|orbit|kind>: animate in the terminal until interrupted.
func previewCmd() *cobra.Command {
	var (
		cf      curveFlags
		delay   time.Duration
		speed   float64
		step    float64
		dots    int
		scale   float64
		frames  int
		width   int
		height  int
		noClear bool
		paused  bool
		plane   string
		startX  float64
		endX    float64
	)
	cmd := &cobra.Command{
		Use:   "preview <line|orbit|kind>",
		Short: "Animate a curve in the terminal",
		Long: "Animate a curve in the terminal.\n\n" +
			"line draws a line along X from --start-x to --end-x with tick labels.\n" +
			"orbit draws a circle on the XZ plane from --center and --radius.\n" +
			"Any other kind is drawn fitted to the canvas on --plane.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := preview.NewAnimator()
			a.Delay = delay
			a.Speed = speed
			a.Paused = paused
			if err := curve.ValidateStep(step); err != nil {
				return err
			}
			if dots < 0 {
				return errors.Errorf("--dots must not be negative, got %d", dots)
			}
			if dots > curve.MaxSamples {
				return errors.Wrapf(curve.ErrTooManySamples, "--dots %d", dots)
			}
			a.Step = step
			a.SetDots(dots)

			r, defScale, err := renderer(args[0], &cf, plane, startX, endX)
			if err != nil {
				return err
			}
			a.Scale = defScale
			if cmd.Flags().Changed("scale") {
				a.Scale = scale
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = preview.Run(ctx, cmd.OutOrStdout(), r, a, preview.Options{
				Width:  width,
				Height: height,
				Frames: frames,
				Clear:  !noClear,
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cf.register(cmd, 5)
	fl := cmd.Flags()
	fl.DurationVar(&delay, "delay", preview.DefaultDelay, "pause between frames")
	fl.Float64Var(&speed, "speed", preview.DefaultSpeed, "t advance per frame")
	fl.Float64Var(&step, "step", preview.DefaultStep, "sampling step of the drawn dots")
	fl.IntVar(&dots, "dots", 0, fmt.Sprintf("draw this many dots instead of using --step (at most %d)", curve.MaxSamples))
	fl.Float64Var(&scale, "scale", 0, fmt.Sprintf("cells per unit (default %d for line, %d otherwise)", lineScale, curveScale))
	fl.IntVar(&frames, "frames", 0, "stop after this many frames (0 runs until interrupted)")
	fl.IntVar(&width, "width", 80, "canvas width in cells")
	fl.IntVar(&height, "height", 24, "canvas height in cells")
	fl.BoolVar(&noClear, "no-clear", false, "do not clear the screen between frames")
	fl.BoolVar(&paused, "paused", false, "start paused and keep redrawing the first frame")
	fl.StringVar(&plane, "plane", "xy", "projection plane for curves: xy or xz")
	fl.Float64Var(&startX, "start-x", 0, "line start")
	fl.Float64Var(&endX, "end-x", 5, "line end")
	return cmd
}

func renderer(kind string, cf *curveFlags, plane string, startX, endX float64) (preview.Renderer, float64, error) {
	switch kind {
	case "line":
		return preview.LinePreview{Line: curve.Linear{Start: geom.Point{X: startX}, End: geom.Point{X: endX}}}, lineScale, nil
	case "orbit":
		s, err := cf.spec(curve.KindCircle)
		if err != nil {
			return nil, 0, err
		}
		return preview.OrbitPreview{Center: s.Center, Radius: s.Radius}, curveScale, nil
	}

	var p preview.Plane
	switch plane {
	case "xy":
		p = preview.PlaneXY
	case "xz":
		p = preview.PlaneXZ
	default:
		return nil, 0, errors.Errorf("unknown plane %q (want xy or xz)", plane)
	}
	s, err := cf.spec(kind)
	if err != nil {
		return nil, 0, err
	}
	c, err := curve.Build(s)
	if err != nil {
		return nil, 0, err
	}
	return preview.CurvePreview{Curve: c, Plane: p}, curveScale, nil
}
