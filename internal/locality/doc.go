// Package locality turns free-text Taiwanese administrative-division strings
// into canonical join keys.
//
// A Matcher is one configurable pipeline:
//  1. Apply the "before" replacements to the raw string.
//  2. Match the administrative-division pattern and capture its groups.
//  3. Append any extra components (a separately supplied village name).
//  4. Join every component with "-".
//  5. Apply the "after" replacements to the joined key.
//
// The three dataset variants are built from the same Matcher with
// source-specific patterns and replacement lists; VillagePattern,
// DistrictPattern, BoundaryAfter and EducationBefore are their defaults.
package locality
