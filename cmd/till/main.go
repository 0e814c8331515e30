// Package main provides the CLI entrypoint for till.
//
// till is a point-of-sale register for a small shop:
//   - pos runs the interactive register loop
//   - catalog lists the sellable products
//   - history lists past receipts behind the admin password
package main

import (
	"fmt"
	"os"

	"github.com/fsenergy/till/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
