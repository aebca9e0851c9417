// Package app wires application dependencies for the CLI and vertexfxd.
//
// It reads Config and ServerConfig from the environment and builds the path
// store, the sampler service and the optional vertexfxd client from them,
// exposing the result via the Wire struct for commands to use.
package app
