// Package main runs vertexfxd, the HTTP sampling server the vertexfx CLI
// talks to when started with --remote.
//
// HTTP API
//
//	GET /healthz
//	    Plain "ok" while the server is up.
//
//	GET /kinds
//	    JSON array of the supported curve kinds, sorted.
//
//	POST /sample
//	    Body is a SampleRequest: {"spec": {...}, "step": S} or
//	    {"spec": {...}, "count": N, "inclusive": true}, optionally with
//	    "round": places. Returns {"points", "fingerprint", "length"}.
//
// Behaviour
//
//   - Nothing is persisted; recent results are kept in an in-memory cache of
//     VERTEXFX_CACHE_SIZE entries.
//   - Bad requests get 400, anything else 500, both with {"error": "..."}.
//   - Every request is access logged with method, path, remote, status, bytes
//     and duration as JSON on stderr.
//   - The listen address comes from VERTEXFXD_ADDR and defaults to :8080.
//     SIGINT and SIGTERM trigger a graceful shutdown bounded by
//     VERTEXFXD_SHUTDOWN_TIMEOUT.
package main
