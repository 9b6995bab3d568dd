// Package main is the entry point for the hospital-billing CLI.
package main

import (
	"os"

	"hospital-billing/cmd/cli/cmd"
	"hospital-billing/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
