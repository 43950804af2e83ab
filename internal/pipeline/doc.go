// Package pipeline runs the join end to end: load the boundary, income and
// education sources, merge income then education into the boundary table,
// and write the outputs. Loading and merging finish before anything is
// written, so a fatal error leaves no partial output.
package pipeline
