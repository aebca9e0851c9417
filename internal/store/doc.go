// Package store provides file-based persistence for vertexfx.
//
// PathFileStore implements domain.PathStore, serialising every named path into
// a single JSON document under the configured home directory. Writes go to a
// temp file that is renamed over the target, so a crash never leaves a half
// written store. All methods are concurrency-safe via internal locking.
package store
