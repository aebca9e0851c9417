// Package sampler is the in-process implementation of domain.Sampler and
// domain.PathService.
//
// It builds curves from curve.Spec, samples them, fingerprints the result and
// keeps a small FIFO cache of recent results keyed by an xxhash of the
// request. Recorded paths go to a domain.PathStore.
package sampler
