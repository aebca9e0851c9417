package preview

import (
	"time"

	"vertexfx/internal/curve"
)

// Defaults carried over from the desktop preview.
const (
	DefaultDelay = 32 * time.Millisecond
	DefaultSpeed = 0.1
	DefaultStep  = 0.1
	DefaultScale = 15
)

// Animator is the playback state of a preview: the current time T, how far
// it advances per tick, and the sampling step and scale renderers use.
type Animator struct {
	T      float64
	Speed  float64
	Step   float64
	Scale  float64
	Paused bool
	Delay  time.Duration
}

// NewAnimator returns an Animator with the default settings.
func NewAnimator() *Animator {
	return &Animator{
		Speed: DefaultSpeed,
		Step:  DefaultStep,
		Scale: DefaultScale,
		Delay: DefaultDelay,
	}
}

// Tick advances T by Speed unless paused, wrapping to 0 once it passes 1.
func (a *Animator) Tick() {
	if a.Paused {
		return
	}
	a.T += a.Speed
	if a.T > 1 {
		a.T = 0
	}
}

// Toggle flips the paused state and returns the new value.
func (a *Animator) Toggle() bool {
	a.Paused = !a.Paused
	return a.Paused
}

// SetDots sets Step so that a full period yields n samples. n <= 0 is ignored.
func (a *Animator) SetDots(n int) {
	if n <= 0 {
		return
	}
	a.Step = 1 / float64(n)
}

// Samples is the number of dots a period is drawn with at the current step,
// at most curve.MaxSamples. A step that is not positive yields none.
func (a *Animator) Samples() int {
	if !(a.Step > 0) {
		return 0
	}
	n := 1 / a.Step
	if n > curve.MaxSamples {
		return curve.MaxSamples
	}
	return int(n)
}
