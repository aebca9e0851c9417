// Package commands defines the vertexfx CLI and wires dependencies for subcommands.
//
// Commands
//
//   - kinds          List the curve kinds
//   - point          Evaluate a curve at one t
//   - sample         Sample a curve, optionally saving it as a named path
//   - scene          Sample every curve of a JSON scene file
//   - paths          List, show or delete saved paths
//   - fingerprint    Print and verify the fingerprint of a saved path
//   - preview        Animate a line, an orbit or any curve in the terminal
//
// # Implementation
//
// The root command loads the environment configuration, applies the
// persistent flags on top and builds the dependency graph (path store,
// sampler service, optional vertexfxd client) before any subcommand runs.
// With --remote set, sampling goes to vertexfxd; saved paths always stay
// local.
package commands
