package sample

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"golang.org/x/crypto/blake2b"

	"vertexfx/internal/geom"
)

// Fingerprint returns a short hex digest of pts.
//
// It hashes the little-endian IEEE-754 bits of every coordinate with
// BLAKE2b-256 and truncates to 10 bytes (20 hex chars). Any change to a single
// bit of any coordinate, or to the point order, changes the result.
func Fingerprint(pts []geom.Point) string {
	h, _ := blake2b.New256(nil)
	var buf [24]byte
	for _, p := range pts {
		binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(p.Y))
		binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(p.Z))
		h.Write(buf[:])
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:10])
}
