// Package main is the entry point for the unilookup CLI.
package main

import (
	"os"

	"github.com/f3rmion/unilookup/cmd/unilookup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
