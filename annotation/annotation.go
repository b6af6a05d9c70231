// Package annotation queries the opaque metadata attached to types and
// members, with or without walking ancestor declarations.
package annotation

import "type-introspector/typemeta"

// Subject is anything that carries declared annotations. *typemeta.TypeInfo
// and *typemeta.MemberInfo satisfy it; ancestor steps are resolved per
// concrete subject kind (base types for types, overridden declarations for
// members).
type Subject interface {
	DeclaredAnnotations() []typemeta.Annotation
}

// Predicate filters annotations by their materialized payload.
type Predicate func(typemeta.Annotation) bool

// Has reports whether an annotation of the given type applies to the
// subject. With inherited true, annotations declared on ancestor
// declarations count as well.
func Has(subject Subject, annType *typemeta.TypeInfo, inherited bool) bool {
	return HasMatching(subject, annType, nil, inherited)
}

// HasMatching reports whether an annotation of the given type applies to the
// subject and satisfies pred. A nil pred accepts every record; an annotation
// present but failing pred does not count.
func HasMatching(subject Subject, annType *typemeta.TypeInfo, pred Predicate, inherited bool) bool {
	return len(AllMatching(subject, annType, pred, inherited)) > 0
}

// All returns every annotation of the given type applying to the subject, in
// declaration order, nearest declaration first. Records found on ancestor
// declarations are returned as copies with Inherited set. Absence yields an
// empty slice, never an error.
func All(subject Subject, annType *typemeta.TypeInfo, inherited bool) []typemeta.Annotation {
	return AllMatching(subject, annType, nil, inherited)
}

// AllMatching returns the annotations of the given type that satisfy pred.
func AllMatching(subject Subject, annType *typemeta.TypeInfo, pred Predicate, inherited bool) []typemeta.Annotation {
	if subject == nil || annType == nil {
		return nil
	}

	var out []typemeta.Annotation
	fromAncestor := false

	for cur := subject; cur != nil; cur = ancestor(cur) {
		for _, ann := range cur.DeclaredAnnotations() {
			if ann.Type != annType {
				continue
			}
			if pred != nil && !pred(ann) {
				continue
			}

			ann.Inherited = fromAncestor
			out = append(out, ann)
		}

		if !inherited {
			break
		}
		fromAncestor = true
	}

	return out
}

// ancestor resolves the next declaration to consult for inherited queries.
// Subjects wrapping a nil pointer have no ancestor.
func ancestor(subject Subject) Subject {
	switch s := subject.(type) {
	case *typemeta.TypeInfo:
		if s != nil && s.Base != nil {
			return s.Base
		}
	case *typemeta.MemberInfo:
		if base := s.BaseDeclaration(); base != nil {
			return base
		}
	}

	return nil
}
