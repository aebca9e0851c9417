package preview

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
)

const clearScreen = "\x1b[H\x1b[2J"

// Options controls Run.
type Options struct {
	Width  int
	Height int
	// Frames stops Run after that many frames; 0 runs until ctx is done.
	Frames int
	// Clear emits an ANSI clear sequence before every frame.
	Clear bool
}

// Run renders frames to w, ticking a after each one and sleeping a.Delay in
// between. It returns nil once Frames frames were written and ctx.Err() if
// ctx ends first.
func Run(ctx context.Context, w io.Writer, r Renderer, a *Animator, opt Options) error {
	for frame := 0; opt.Frames == 0 || frame < opt.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		c := NewCanvas(opt.Width, opt.Height)
		st := r.Render(c, *a)

		prefix := ""
		if opt.Clear {
			prefix = clearScreen
		}
		if _, err := fmt.Fprintf(w, "%s%sLocation: %s  t: %.2f\n", prefix, c.String(), st.Position.Round(4), st.T); err != nil {
			return errors.Wrap(err, "write frame")
		}

		a.Tick()

		if opt.Frames != 0 && frame == opt.Frames-1 {
			break
		}
		if a.Delay > 0 {
			timer := time.NewTimer(a.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	return nil
}
