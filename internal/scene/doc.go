// Package scene loads JSON scene files describing several curves at once and
// samples them through a domain.Sampler.
package scene
