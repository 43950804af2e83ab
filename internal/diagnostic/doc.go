// Package diagnostic provides structured warnings and errors collected while
// parsing the boundary, income and education sources.
//
// Parsers never print. They return a Diagnostics value alongside the parsed
// table so callers can log, ignore, or fail on what was found:
//   - Unparseable locality strings
//   - Missing source directories or empty file sets
//   - Unparseable numeric cells
//   - Zero population totals
package diagnostic
