// Package main is the entry point for the cropscope CLI.
package main

import (
	"os"

	"cropscope/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
