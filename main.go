package main

import (
	"os"

	"github.com/dsangels/aiengine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
