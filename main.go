package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/Rana718/fakebank/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
