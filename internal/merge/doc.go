// Package merge folds supplemental tables into the boundary table.
//
// Into attaches each supplemental record to the boundary record with the same
// key under a named field. Keys without a boundary record are returned as
// absent; they never create new boundary records. Absent accumulates absent
// keys across calls without duplicates.
package merge
