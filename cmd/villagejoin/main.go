// Package main provides the CLI entrypoint for villagejoin.
//
// villagejoin joins Taiwanese village-level datasets on a canonical
// city-district-village key:
//   - Loads boundary records from a directory of JSON files
//   - Loads household income and educational attainment CSVs
//   - Attaches income and education to matching boundary records
//   - Writes the merged JSON, the absent keys, and optionally SQLite
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "villagejoin:", err)
		os.Exit(1)
	}
}
