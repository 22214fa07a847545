// Package main provides the lintkit command-line interface.
package main

import (
	"os"

	"github.com/jakoblorz/lintkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
