package app

import (
	"context"

	"vertexfx/internal/curve"
)

// Kinds lists the curve kinds of the configured sampler.
func (w *Wire) Kinds(ctx context.Context) ([]string, error) {
	if w.Remote != nil {
		return w.Remote.Kinds(ctx)
	}
	return curve.Kinds(), nil
}

// Local reports whether sampling happens in process.
func (w *Wire) Local() bool { return w.Remote == nil }
