package main

import (
	"os"

	"github.com/mbeckett/plinth/cmd/plinthgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
