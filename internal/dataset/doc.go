// Package dataset defines the keyed tables that flow from the source parsers
// through the merge.
//
// Key types:
//   - Attributes: an insertion-ordered JSON object (one boundary record)
//   - Table: an insertion-ordered mapping from canonical key to a value
//   - Boundaries: the base table of boundary records
//   - Income, Education: fixed-schema supplemental records
package dataset
