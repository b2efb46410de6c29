package main

import (
	"os"

	"setgame/cmd/setgame/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
