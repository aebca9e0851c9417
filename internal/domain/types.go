package domain

import (
	"vertexfx/internal/curve"
	"vertexfx/internal/geom"
)

// SampleRequest describes how to sample one curve.
//
// Exactly one of Step and Count should be set. Count samples n points over
// [0, 1); with Inclusive it samples n points over [0, 1]. Round, when set,
// rounds every coordinate to that many decimals.
type SampleRequest struct {
	Spec      curve.Spec `json:"spec"`
	Step      float64    `json:"step,omitempty"`
	Count     int        `json:"count,omitempty"`
	Inclusive bool       `json:"inclusive,omitempty"`
	Round     *int       `json:"round,omitempty"`
}

// SampleResult is what a Sampler returns.
type SampleResult struct {
	Points      []geom.Point `json:"points"`
	Fingerprint string       `json:"fingerprint"`
	Length      float64      `json:"length"`
}

// Path is a sampled curve kept in a PathStore under Name.
type Path struct {
	Name        string        `json:"name"`
	Request     SampleRequest `json:"request"`
	Points      []geom.Point  `json:"points"`
	Fingerprint string        `json:"fingerprint"`
	Length      float64       `json:"length"`
	CreatedUTC  int64         `json:"created_utc"`
}

// Result returns the sampling outcome stored in p.
func (p Path) Result() SampleResult {
	return SampleResult{Points: p.Points, Fingerprint: p.Fingerprint, Length: p.Length}
}
