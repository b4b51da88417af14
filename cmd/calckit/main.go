package main

import (
	"os"

	"calckit/cmd/calckit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
