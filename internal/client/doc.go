// Package client provides an HTTP implementation of the domain.RemoteClient
// interface used by the vertexfx CLI.
//
// It lets the CLI hand sampling off to a vertexfxd instance instead of doing
// it in process. Supported operations:
//   - Listing the curve kinds the server knows.
//   - Sampling a curve request and returning its points and fingerprint.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors with the HTTP method,
// path and status text, followed by the server's error message when present.
package client
