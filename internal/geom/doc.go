// Package geom provides the immutable 3D point type used by every curve.
//
// A Point doubles as a vector: arithmetic, dot and cross products, rotations
// about the principal axes and linear interpolation all return new values and
// never modify the receiver.
package geom
