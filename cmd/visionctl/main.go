package main

import (
	"os"

	"github.com/gabo-gil-playground/multi-content-recognition/cmd/visionctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
