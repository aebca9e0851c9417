package curve

import (
	"github.com/pkg/errors"
)

// MaxSamples bounds the number of t values a single step may produce.
const MaxSamples = 1 << 20

var (
	// ErrInvalidStep is returned when a sampling step is outside (0, 1].
	ErrInvalidStep = errors.New("step must be > 0 and <= 1")
	// ErrTooManySamples is returned when a step or count would exceed MaxSamples.
	ErrTooManySamples = errors.Errorf("more than %d points requested", MaxSamples)
)

// ValidateStep checks that 0 < step <= 1 and that step yields at most
// MaxSamples values of t.
func ValidateStep(step float64) error {
	// written this way round so NaN fails too
	if !(step > 0 && step <= 1) {
		return errors.Wrapf(ErrInvalidStep, "but was: %v", step)
	}
	if 1/step > MaxSamples {
		return errors.Wrapf(ErrTooManySamples, "step %v", step)
	}
	return nil
}

// Times returns t = i*step for i = 0, 1, ... while t < 1.
//
// t is computed from the index instead of accumulated so that steps such as
// 0.1 yield exactly ten values rather than eleven.
func Times(step float64) ([]float64, error) {
	if err := ValidateStep(step); err != nil {
		return nil, err
	}
	out := make([]float64, 0, int(1/step)+1)
	for i := 0; ; i++ {
		t := float64(i) * step
		if t >= 1 {
			break
		}
		out = append(out, t)
	}
	return out, nil
}
