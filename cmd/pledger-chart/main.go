package main

import (
	"os"

	"github.com/woodruffw/pledger-chart/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
