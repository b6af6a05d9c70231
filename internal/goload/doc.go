// Package goload translates Go packages into metadata universes.
//
// It uses golang.org/x/tools/go/packages with go/types to populate a
// typemeta.Universe: structs become classes, interfaces keep their embedding
// graph, generic declarations become open definitions, and struct tags
// surface as annotations. Shapes with no counterpart (channels, funcs,
// multi-result methods) are skipped with diagnostics instead of failing the
// load.
//
// Key types:
//   - Loader: loads packages and populates a fresh universe
//   - Result: the populated universe, loaded package paths, and diagnostics
package goload
