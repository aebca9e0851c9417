// Package preview animates curves in a terminal.
//
// An Animator holds the playback state (current t, speed, pause, sampling
// step, scale and frame delay). Renderers draw one frame of a curve onto a
// Canvas of runes, and Run loops frames to an io.Writer until a frame budget
// is spent or the context ends.
package preview
