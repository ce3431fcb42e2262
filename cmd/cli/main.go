// Package main is the entry point for the unity-check CLI.
package main

import (
	"os"

	"unity-check/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
