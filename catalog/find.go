package catalog

import (
	"type-introspector/internal/common"
	"type-introspector/typemeta"
)

// FindMember locates a named property or field anywhere on t's member
// surface, without the catalog's deduplication: shadowed and re-declared
// members all count. A single hit wins outright. Several hits resolve to the
// one whose value type is identity-equal to preferred; when none or more
// than one match the preference, the result is nil. Absence and ambiguity
// share the not-found shape and neither raises.
func FindMember(t *typemeta.TypeInfo, name string, preferred *typemeta.TypeInfo) *typemeta.MemberInfo {
	candidates := collectNamed(t, name)

	if common.IsEmpty(candidates) {
		return nil
	}
	if common.IsSingle(candidates) {
		first, _ := common.First(candidates)
		return first
	}

	var match *typemeta.MemberInfo
	for _, c := range candidates {
		if c.Type != preferred {
			continue
		}
		if match != nil {
			return nil
		}
		match = c
	}

	return match
}

// collectNamed gathers every accessible member with the given name: the full
// base chain for classes and values, the transitive parent set for
// interfaces.
func collectNamed(t *typemeta.TypeInfo, name string) []*typemeta.MemberInfo {
	if t == nil {
		return nil
	}

	var out []*typemeta.MemberInfo
	take := func(cur *typemeta.TypeInfo) {
		for _, m := range cur.Members {
			if m.Name == name && eligible(m, nil) {
				out = append(out, m)
			}
		}
	}

	if t.Kind != typemeta.TypeKindInterface {
		for cur := t; cur != nil; cur = cur.Base {
			take(cur)
		}

		return out
	}

	queue := []*typemeta.TypeInfo{t}
	visited := map[*typemeta.TypeInfo]bool{t: true}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		take(cur)

		for _, parent := range cur.Interfaces {
			if !visited[parent] {
				visited[parent] = true
				queue = append(queue, parent)
			}
		}
	}

	return out
}
