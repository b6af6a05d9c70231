package goload

import (
	"fmt"
	"go/types"
	"log/slog"

	"golang.org/x/tools/go/packages"

	"type-introspector/internal/diagnostic"
	"type-introspector/typemeta"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Diagnostic codes emitted while loading and translating.
const (
	CodeLoadFailure    = "load-failure"        // package failed to load or type-check
	CodeSkippedShape   = "skipped-shape"       // declaration has no translatable counterpart
	CodeFlattenedEmbed = "flattened-embedding" // extra embedded struct flattened into promoted fields
	CodeNamedComposite = "named-composite"     // named composite recorded as its underlying shape
)

// Result bundles the outcome of one load.
type Result struct {
	Universe *typemeta.Universe
	Packages []string // loaded package paths, in load order
	Diags    diagnostic.Diagnostics
}

// Loader loads Go packages and translates their exported named types into a
// fresh universe. A Loader is good for one Load call.
type Loader struct {
	universe *typemeta.Universe
	diags    diagnostic.Diagnostics
	logger   *slog.Logger

	cache  map[types.Type]*typemeta.TypeInfo // handles recursive types
	mapDef *typemeta.TypeInfo                // go.Map`2, defined on first map
	enums  map[*types.TypeName]bool          // named basics with package-level constants
}

// NewLoader creates a Loader. A nil logger discards log output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Loader{
		universe: typemeta.NewUniverse(),
		logger:   logger,
		cache:    make(map[types.Type]*typemeta.TypeInfo),
		enums:    make(map[*types.TypeName]bool),
	}
}

// Load loads the given package patterns and translates every exported named
// type. Patterns are standard Go package patterns (e.g., "./sample",
// "type-introspector/sample").
func (l *Loader) Load(patterns ...string) (*Result, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Driver findings fold into the collector before anything translates, so
	// a failed load surfaces every broken package, not just the first.
	l.diags.Merge(packageErrors(pkgs))
	if l.diags.HasErrors() {
		return nil, fmt.Errorf("package errors: %w", l.diags.Error())
	}

	// Enum detection is a whole-load pre-pass: a named basic type counts as
	// an enum when any loaded package declares a constant of it.
	for _, pkg := range pkgs {
		l.markEnumCandidates(pkg)
	}

	result := &Result{Universe: l.universe}
	for _, pkg := range pkgs {
		l.logger.Debug("translating package", "path", pkg.PkgPath)
		l.processPackage(pkg)
		result.Packages = append(result.Packages, pkg.PkgPath)
	}

	result.Diags = l.diags
	l.logger.Info("load complete",
		"packages", len(result.Packages),
		"warnings", len(result.Diags.Warnings))

	return result, nil
}

// processPackage translates every exported named type of one package.
func (l *Loader) processPackage(pkg *packages.Package) {
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}

		// Aliases resolve to their target on reference; only real
		// declarations get an identity of their own.
		if !obj.Exported() || obj.IsAlias() {
			continue
		}

		if l.translate(obj.Type()) == nil {
			l.diags.AddWarning(CodeSkippedShape,
				"declaration is not translatable", qualifiedName(obj), "")
		}
	}
}

// packageErrors rolls the load and type-check failures reported by the
// driver into error diagnostics, one per finding, keyed by the failing
// package.
func packageErrors(pkgs []*packages.Package) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics
	for _, pkg := range pkgs {
		subject := pkg.PkgPath
		if subject == "" {
			subject = pkg.ID
		}

		for _, e := range pkg.Errors {
			diags.AddError(CodeLoadFailure, e.Msg, subject, "")
		}
	}

	return diags
}

// markEnumCandidates records named basic types that have at least one
// package-level constant of that exact type.
func (l *Loader) markEnumCandidates(pkg *packages.Package) {
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}

		named, ok := types.Unalias(c.Type()).(*types.Named)
		if !ok {
			continue
		}

		if _, ok := named.Underlying().(*types.Basic); ok {
			l.enums[named.Obj()] = true
		}
	}
}
