package main

import (
	"os"

	"chaincraft/cmd/chaincraft-id/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
