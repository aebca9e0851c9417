// Package logger builds the structured logger shared by the CLI and vertexfxd.
package logger
