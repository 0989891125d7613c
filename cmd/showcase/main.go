package main

import (
	"os"

	"github.com/realgold/showcase/cmd/showcase/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
