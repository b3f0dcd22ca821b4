// Package main is the entry point for the artLibro CLI.
package main

import (
	"fmt"
	"os"

	"github.com/kdh990315/artlibro-cli/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
