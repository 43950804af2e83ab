// Package source parses the three input datasets into keyed tables.
//
//   - Boundary: a directory of JSON files, each an object from raw locality
//     strings to attribute objects. Files are read in name order and later
//     files overwrite earlier ones on key collision.
//   - Income: one CSV with the header on the first row.
//   - Education: one CSV whose real header is on the second row.
//
// Every parser returns the table, the diagnostics it collected, and an error
// only for problems no single row can recover from: unreadable files,
// malformed CSV, missing columns, or boundary values that are not objects.
package source
