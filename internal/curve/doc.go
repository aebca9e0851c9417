// Package curve implements motion curves parameterised by a normalized time t.
//
// The free functions (Circle, Ellipse, Spiral, Bezier, CatmullRom, Arc, Wave,
// PendulumAngle) evaluate one position or value. The *Curve types wrap the
// same formulas behind the Curve interface so they can be sampled, stored and
// previewed. Spec and Build turn a declarative description into a Curve.
//
// t is expected in [0, 1] but never clamped: periodic curves simply repeat and
// polynomial ones extrapolate.
package curve
