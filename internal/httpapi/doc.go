// Package httpapi is the HTTP front end of vertexfxd.
//
//	GET  /healthz    plain "ok"
//	GET  /kinds      sorted list of curve kinds
//	POST /sample     domain.SampleRequest in, domain.SampleResult out
//
// Malformed or out-of-range requests get 400 with {"error": "..."}; anything
// else that fails gets 500. Every request is access logged.
package httpapi
