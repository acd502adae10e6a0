// Package main provides the CLI entrypoint for layout-importer.
//
// layout-importer reads the type-size reports the Rust compiler prints with
// -Zprint-type-size and:
//   - Parses them into typed records
//   - Rebuilds every type's byte layout and cross-checks the reported sizes
//   - Generates Go declarations with the same layouts
package main

import (
	"os"

	"type-layout-importer/cmd/layout-importer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
