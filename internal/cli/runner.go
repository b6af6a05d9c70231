package cli

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"type-introspector/annotation"
	"type-introspector/catalog"
	"type-introspector/classify"
	"type-introspector/conversion"
	"type-introspector/display"
	"type-introspector/internal/common"
	"type-introspector/internal/diagnostic"
	"type-introspector/internal/goload"
	"type-introspector/internal/match"
	"type-introspector/options"
	"type-introspector/typemeta"
	"type-introspector/utils"
)

// maxSuggestions caps the "did you mean" list for unknown type names.
const maxSuggestions = 3

// dumper renders raw metadata without String methods or pointer addresses,
// so interned graphs stay readable.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                4,
	DisablePointerAddresses: true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Runner orchestrates one introspection cycle: load packages, select types,
// render reports.
type Runner struct {
	out    io.Writer
	logger *slog.Logger
	cache  *catalog.Cache
}

// NewRunner creates a runner writing reports to out. A nil logger discards
// log output.
func NewRunner(out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{
		out:    out,
		logger: logger,
		cache:  catalog.NewCache(catalog.Options{}),
	}
}

// Run executes a single introspection cycle.
func (r *Runner) Run(cfg *Config) error {
	res, err := goload.NewLoader(r.logger).Load(cfg.Patterns...)
	if err != nil {
		return fmt.Errorf("load packages: %w", err)
	}

	r.renderDiags(res.Diags)

	selected, err := r.selectTypes(res, cfg.Types)
	if err != nil {
		return err
	}

	r.logger.Debug("reporting types", "count", len(selected))

	for _, t := range selected {
		r.report(t, cfg.Sections)
	}

	return nil
}

// renderDiags prints collected findings ahead of the reports.
func (r *Runner) renderDiags(diags diagnostic.Diagnostics) {
	all := diags.All()
	if common.IsEmpty(all) {
		return
	}

	fmt.Fprintf(r.out, "diagnostics (%d):\n", len(all))
	for _, d := range all {
		fmt.Fprintf(r.out, "  %s: %s\n", d.Severity, d)
	}
	fmt.Fprintln(r.out)
}

// selectTypes resolves the requested names against the loaded namespaces. An
// empty request selects every type of the loaded packages.
func (r *Runner) selectTypes(res *goload.Result, requested []string) ([]*typemeta.TypeInfo, error) {
	loaded := make(map[string]bool, len(res.Packages))
	for _, p := range res.Packages {
		loaded[p] = true
	}

	var candidates []*typemeta.TypeInfo
	for _, t := range res.Universe.Types() {
		if loaded[t.Namespace] {
			candidates = append(candidates, t)
		}
	}

	if common.IsEmpty(requested) {
		return candidates, nil
	}

	out := make([]*typemeta.TypeInfo, 0, len(requested))
	for _, name := range requested {
		t := resolveName(candidates, name)
		if t == nil {
			return nil, unknownType(name, candidates)
		}

		out = append(out, t)
	}

	return out, nil
}

// resolveName matches a requested name against the candidates: the full
// name, the bare name, or "pkg.Name" with the package alias as qualifier,
// all with the generic arity suffix optional.
func resolveName(candidates []*typemeta.TypeInfo, name string) *typemeta.TypeInfo {
	qualifier, bare := "", name
	if i := strings.LastIndex(name, "."); i >= 0 {
		qualifier, bare = name[:i], name[i+1:]
	}

	for _, t := range candidates {
		if t.FullName() == name {
			return t
		}

		base, _ := utils.Unpack2(strings.SplitN(t.Name, "`", 2))
		if bare != t.Name && bare != base {
			continue
		}

		if qualifier == "" || qualifier == t.Namespace || qualifier == common.PkgAlias(t.Namespace) {
			return t
		}
	}

	return nil
}

// unknownType builds the error for an unresolved name, with nearest-name
// suggestions when anything plausible exists.
func unknownType(name string, candidates []*typemeta.TypeInfo) error {
	names := make([]string, 0, len(candidates))
	for _, t := range candidates {
		names = append(names, t.Name)
	}

	if nearest := match.Nearest(name, names, maxSuggestions); !common.IsEmpty(nearest) {
		return fmt.Errorf("unknown type %q (did you mean %s?)", name, strings.Join(nearest, ", "))
	}

	return fmt.Errorf("unknown type %q", name)
}

// report renders the selected sections for one type.
func (r *Runner) report(t *typemeta.TypeInfo, sections options.SectionEnum) {
	fmt.Fprintf(r.out, "%s (%s %s)\n", display.FriendlyName(t), t.Kind, t.FullName())

	if sections.Has(options.SectionClassification) {
		r.reportClassification(t)
	}

	if sections.Has(options.SectionMembers) {
		r.reportMembers(t)
	}

	if sections.Has(options.SectionAnnotations) {
		r.reportAnnotations(t)
	}

	if sections.Has(options.SectionConversions) {
		r.reportConversions(t)
	}

	if sections.Has(options.SectionDump) {
		dumper.Fdump(r.out, t)
	}

	fmt.Fprintln(r.out)
}

func (r *Runner) reportClassification(t *typemeta.TypeInfo) {
	fmt.Fprintln(r.out, "  classification:")
	fmt.Fprintf(r.out, "    value semantics: %t\n", classify.HasValueSemantics(t))
	fmt.Fprintf(r.out, "    tuple-like:      %t\n", classify.IsTupleLike(t))
	fmt.Fprintf(r.out, "    key-value pair:  %t\n", classify.IsKeyValuePair(t))
	fmt.Fprintf(r.out, "    anonymous:       %t\n", classify.IsAnonymous(t))
	fmt.Fprintf(r.out, "    record:          %t\n", classify.IsRecord(t))

	if inner := classify.NullableOrActualType(t); inner != t {
		fmt.Fprintf(r.out, "    nullable of:     %s\n", display.FriendlyName(inner))
	}
}

func (r *Runner) reportMembers(t *typemeta.TypeInfo) {
	members := r.cache.Get(t)

	fmt.Fprintf(r.out, "  members (%d):\n", len(members))
	for _, m := range members {
		origin := ""
		if m.DeclaredOn != t {
			origin = fmt.Sprintf(" (from %s)", display.FriendlyName(m.DeclaredOn))
		}

		fmt.Fprintf(r.out, "    %s %s %s %s%s\n",
			m.Access, m.Kind, m.Name, display.FriendlyName(m.Type), origin)
	}
}

func (r *Runner) reportAnnotations(t *typemeta.TypeInfo) {
	fmt.Fprintln(r.out, "  annotations:")

	count := 0
	for _, at := range annotationTypes(t) {
		for _, ann := range annotation.All(t, at, true) {
			fmt.Fprintf(r.out, "    %s\n", renderAnnotation(ann))
			count++
		}
	}

	for _, m := range r.cache.Get(t) {
		for _, at := range memberAnnotationTypes(m) {
			for _, ann := range annotation.All(m, at, true) {
				fmt.Fprintf(r.out, "    %s: %s\n", m.Name, renderAnnotation(ann))
				count++
			}
		}
	}

	if count == 0 {
		fmt.Fprintln(r.out, "    (none)")
	}
}

func (r *Runner) reportConversions(t *typemeta.TypeInfo) {
	fmt.Fprintln(r.out, "  conversions:")

	type signature struct {
		source *typemeta.TypeInfo
		target *typemeta.TypeInfo
		kind   conversion.Kind
	}

	seen := make(map[signature]bool)
	count := 0

	for _, m := range t.Methods {
		if m.Name != typemeta.OpImplicit && m.Name != typemeta.OpExplicit {
			continue
		}
		if len(m.Params) != 1 {
			continue
		}

		kind := conversion.Implicit
		if m.Name == typemeta.OpExplicit {
			kind = conversion.Explicit
		}

		sig := signature{source: m.Params[0], target: m.Return, kind: kind}
		if seen[sig] {
			continue
		}
		seen[sig] = true

		ops := conversion.FindOperators(t, sig.source, sig.target, kind)
		if common.IsEmpty(ops) {
			continue
		}

		note := ""
		if common.IsMultiple(ops) {
			note = fmt.Sprintf(" (%d overloads)", len(ops))
		}

		fmt.Fprintf(r.out, "    %s: %s -> %s%s\n",
			kind, display.FriendlyName(sig.source), display.FriendlyName(sig.target), note)
		count++
	}

	if count == 0 {
		fmt.Fprintln(r.out, "    (none)")
	}
}

// annotationTypes lists the distinct annotation types declared along the
// base chain, nearest declaration first.
func annotationTypes(t *typemeta.TypeInfo) []*typemeta.TypeInfo {
	var out []*typemeta.TypeInfo

	seen := make(map[*typemeta.TypeInfo]bool)
	for cur := t; cur != nil; cur = cur.Base {
		for _, ann := range cur.Annotations {
			if !seen[ann.Type] {
				seen[ann.Type] = true
				out = append(out, ann.Type)
			}
		}
	}

	return out
}

// memberAnnotationTypes lists the distinct annotation types on a member and
// the declarations it overrides.
func memberAnnotationTypes(m *typemeta.MemberInfo) []*typemeta.TypeInfo {
	var out []*typemeta.TypeInfo

	seen := make(map[*typemeta.TypeInfo]bool)
	for cur := m; cur != nil; cur = cur.BaseDeclaration() {
		for _, ann := range cur.Annotations {
			if !seen[ann.Type] {
				seen[ann.Type] = true
				out = append(out, ann.Type)
			}
		}
	}

	return out
}

func renderAnnotation(ann typemeta.Annotation) string {
	s := "@" + ann.Type.FullName() + payload(ann.Data)
	if ann.Inherited {
		s += " (inherited)"
	}

	return s
}

// payload renders the data map with sorted keys for determinism.
func payload(data map[string]any) string {
	if len(data) == 0 {
		return ""
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, data[k])
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
