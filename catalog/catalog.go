// Package catalog builds the ordered, de-duplicated, accessibility-filtered
// member surfaces that structural comparison works from.
package catalog

import "type-introspector/typemeta"

// Options adjusts catalog construction.
type Options struct {
	// Names, when non-empty, restricts properties to the listed names.
	// Fields are never filtered.
	Names []string
}

// Build returns the comparable members of t: instance properties reachable
// through a public or protected get-accessor (indexers excluded) and fields
// with public or protected visibility. For classes and values the base-type
// chain is walked most-derived first; for interfaces the parent graph is
// traversed breadth-first with single-visit semantics, newly discovered
// members layered before previously collected ones. Either way a member name
// is taken at most once, first discovery wins. The result may be empty,
// never an error: member-less types (primitives, arrays) yield nil.
func Build(t *typemeta.TypeInfo, opts Options) []*typemeta.MemberInfo {
	if t == nil {
		return nil
	}

	if t.Kind == typemeta.TypeKindInterface {
		return buildInterface(t, opts)
	}

	return buildChain(t, opts)
}

// buildChain collects along the linear base-type chain. Linear inheritance
// has one path to any member, so the seen set only handles shadowing.
func buildChain(t *typemeta.TypeInfo, opts Options) []*typemeta.MemberInfo {
	names := nameSet(opts.Names)
	seen := make(map[string]bool)

	var out []*typemeta.MemberInfo
	for cur := t; cur != nil; cur = cur.Base {
		for _, m := range cur.Members {
			if !eligible(m, names) || seen[m.Name] {
				continue
			}
			seen[m.Name] = true
			out = append(out, m)
		}
	}

	return out
}

// buildInterface walks the parent-interface graph breadth-first. The
// explicit worklist plus identity-keyed visited set guarantees each
// interface contributes exactly once even when diamonds make it reachable
// along several paths; recursion is avoided so deep hierarchies cannot
// exhaust the stack. Members of each dequeued interface are prepended as a
// block; ordering among one block follows declaration order and no stricter
// cross-level order is promised.
func buildInterface(t *typemeta.TypeInfo, opts Options) []*typemeta.MemberInfo {
	names := nameSet(opts.Names)
	seen := make(map[string]bool)

	queue := []*typemeta.TypeInfo{t}
	visited := map[*typemeta.TypeInfo]bool{t: true}

	var out []*typemeta.MemberInfo
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		var block []*typemeta.MemberInfo
		for _, m := range cur.Members {
			if !eligible(m, names) || seen[m.Name] {
				continue
			}
			seen[m.Name] = true
			block = append(block, m)
		}
		out = append(block, out...)

		for _, parent := range cur.Interfaces {
			if !visited[parent] {
				visited[parent] = true
				queue = append(queue, parent)
			}
		}
	}

	return out
}

// eligible applies the accessibility rules: instance members only, reachable
// through a public or protected accessor. A property with no getter or a
// non-private property behind a private getter stays out. The name filter
// applies to properties alone.
func eligible(m *typemeta.MemberInfo, names map[string]bool) bool {
	if m.IsStatic || !m.Access.NonPrivate() {
		return false
	}

	if m.Kind == typemeta.MemberKindProperty {
		if m.IsIndexer {
			return false
		}
		if len(names) > 0 && !names[m.Name] {
			return false
		}
	}

	return true
}

func nameSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}

	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}

	return set
}
