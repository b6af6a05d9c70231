// Package match provides name normalization and edit-distance ranking for
// "did you mean" suggestions when a requested type name is unknown.
//
// Key functions:
//   - NormalizeName: normalizes type and member names for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Nearest: ranks candidate names by similarity to a query
package match
