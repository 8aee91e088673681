package main

import (
	"os"

	"github.com/edukite/pathfinder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
