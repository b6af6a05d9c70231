// Package relation answers assignability and derivation questions over
// typemeta types, including matching against open generic definitions.
package relation

import "type-introspector/typemeta"

// IsSameOrInherits reports whether actual is expected itself or reaches it
// through any combination of base-type and interface-implementation links.
func IsSameOrInherits(actual, expected *typemeta.TypeInfo) bool {
	if actual == nil || expected == nil {
		return false
	}

	return actual == expected || isAssignable(actual, expected)
}

// IsAssignableToOpenGeneric reports whether actual fits the open generic
// definition def. Open definitions are not assignability targets in the
// plain type system, so the shape match is explicit: interface definitions
// match when actual or anything in its transitive interface set instantiates
// def; class and value definitions match when actual is def itself or
// derives from an instantiation of it.
func IsAssignableToOpenGeneric(actual, def *typemeta.TypeInfo) bool {
	if actual == nil || !def.IsGenericDef() {
		return false
	}

	if def.Kind == typemeta.TypeKindInterface {
		return ImplementsOpenGeneric(actual, def)
	}

	return actual == def || IsDerivedFromOpenGeneric(actual, def)
}

// IsDerivedFromOpenGeneric reports whether actual or one of its base types
// is an instantiation of def. A type is never derived from itself: querying
// a definition against itself is false, while a closed instantiation does
// derive from its own definition.
func IsDerivedFromOpenGeneric(actual, def *typemeta.TypeInfo) bool {
	if actual == nil || !def.IsGenericDef() {
		return false
	}
	if actual == def {
		return false
	}

	for cur := actual; cur != nil; cur = cur.Base {
		if cur.GenericDef == def {
			return true
		}
	}

	return false
}

// ImplementsOpenGeneric reports whether actual is, or transitively
// implements, an instantiation of the open interface definition def.
func ImplementsOpenGeneric(actual, def *typemeta.TypeInfo) bool {
	if actual == nil || !def.IsGenericDef() {
		return false
	}

	if actual.GenericDef == def {
		return true
	}

	for _, iface := range interfaceClosure(actual) {
		if iface.GenericDef == def {
			return true
		}
	}

	return false
}

func isAssignable(actual, expected *typemeta.TypeInfo) bool {
	for cur := actual; cur != nil; cur = cur.Base {
		if cur == expected {
			return true
		}
	}

	if expected.Kind != typemeta.TypeKindInterface {
		return false
	}

	for _, iface := range interfaceClosure(actual) {
		if iface == expected {
			return true
		}
	}

	return false
}

// interfaceClosure returns every interface reachable from t: the direct
// interfaces of t and of each of its base types, plus all their transitive
// parents. Breadth-first with an explicit worklist and a seen set keyed by
// identity, so diamond-shaped graphs contribute each interface once and the
// walk terminates on re-entrant paths.
func interfaceClosure(t *typemeta.TypeInfo) []*typemeta.TypeInfo {
	var queue []*typemeta.TypeInfo
	seen := make(map[*typemeta.TypeInfo]bool)

	enqueue := func(ifaces []*typemeta.TypeInfo) {
		for _, iface := range ifaces {
			if !seen[iface] {
				seen[iface] = true
				queue = append(queue, iface)
			}
		}
	}

	for cur := t; cur != nil; cur = cur.Base {
		enqueue(cur.Interfaces)
	}

	var closure []*typemeta.TypeInfo
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		closure = append(closure, cur)
		enqueue(cur.Interfaces)
	}

	return closure
}
