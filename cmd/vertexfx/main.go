package main

import (
	"os"

	"vertexfx/cmd/vertexfx/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
