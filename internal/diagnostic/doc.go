// Package diagnostic provides structured findings collected while
// translating loaded source into the metadata model.
//
// Key capabilities:
//   - Untranslatable construct warnings (channels, funcs, exotic shapes)
//   - Flattened multiple-embedding notes
//   - Severity-partitioned collection with merge and error rollup
package diagnostic
