package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/iw2rmb/genko/internal/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		_, _ = color.New(color.FgRed).Fprintln(os.Stderr, "genko:", err)
		os.Exit(1)
	}
}
