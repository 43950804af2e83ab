// Package output writes the merged dataset: an indented JSON object in
// boundary order, a text file of absent keys, and optionally a SQLite
// database holding both.
package output
