// Package match provides Levenshtein distance on runes and candidate ranking
// for absent keys.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings, counting runes
//   - LevenshteinNormalized: similarity in [0, 1]
//   - RankCandidates: ranks boundary keys that could be meant by an absent key
package match
