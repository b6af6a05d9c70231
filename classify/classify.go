// Package classify provides pure shape predicates over typemeta types. All
// predicates tolerate nil and detached types by answering false (or, for
// NullableOrActualType, returning the input unchanged); none panic.
package classify

import (
	"strings"

	"type-introspector/annotation"
	"type-introspector/typemeta"
	"type-introspector/utils"
)

// HasValueSemantics reports whether the type replaces the default
// reference-identity equality with its own and is none of the special shapes
// (anonymous, tuple-like, key-value pair) that receive dedicated comparison
// treatment elsewhere.
func HasValueSemantics(t *typemeta.TypeInfo) bool {
	return overridesEquality(t) && !IsAnonymous(t) && !IsTupleLike(t) && !IsKeyValuePair(t)
}

// IsTupleLike reports whether t instantiates one of the fixed-arity tuple
// shapes. Arities 1 through 7 qualify directly; arity 8 qualifies only when
// the eighth slot is itself tuple-like, covering chained encodings of longer
// tuples.
func IsTupleLike(t *typemeta.TypeInfo) bool {
	if !t.IsClosedGeneric() || t.Universe() == nil {
		return false
	}

	tuples := t.Universe().Known().Tuples
	arity := len(t.GenericArgs)
	if !utils.IsInRange(1, arity, len(tuples)) || t.GenericDef != tuples[arity-1] {
		return false
	}

	if arity < len(tuples) {
		return true
	}

	return IsTupleLike(t.GenericArgs[len(tuples)-1])
}

// IsAnonymous reports whether t is a compiler-named anonymous type: its name
// carries the anonymous marker and the type itself is annotated as
// compiler-generated.
func IsAnonymous(t *typemeta.TypeInfo) bool {
	if t == nil || t.Universe() == nil {
		return false
	}

	return strings.Contains(t.Name, typemeta.AnonymousMarker) &&
		annotation.Has(t, t.Universe().Known().CompilerGenerated, false)
}

// IsRecord reports whether t came from a record declaration: a synthesized
// clone method is exposed somewhere in the chain and the type directly
// declares the equality-contract property with a compiler-emitted accessor.
func IsRecord(t *typemeta.TypeInfo) bool {
	if t == nil || t.ResolveMethod(typemeta.SynthesizedClone) == nil {
		return false
	}

	for _, m := range t.Members {
		if m.Kind == typemeta.MemberKindProperty &&
			m.Name == typemeta.EqualityContractName &&
			m.SyntheticAccessor {
			return true
		}
	}

	return false
}

// IsKeyValuePair reports whether t instantiates the well-known two-argument
// key/value shape.
func IsKeyValuePair(t *typemeta.TypeInfo) bool {
	if !t.IsClosedGeneric() || t.Universe() == nil {
		return false
	}

	return t.GenericDef == t.Universe().Known().KeyValuePair
}

// NullableOrActualType unwraps one nullable layer: a closed nullable
// instantiation yields its single argument, anything else (including the
// open definition and nil) comes back unchanged.
func NullableOrActualType(t *typemeta.TypeInfo) *typemeta.TypeInfo {
	if t.IsClosedGeneric() && t.Universe() != nil && t.GenericDef == t.Universe().Known().Nullable {
		return t.GenericArgs[0]
	}

	return t
}

func overridesEquality(t *typemeta.TypeInfo) bool {
	if t == nil || t.Universe() == nil {
		return false
	}

	root := t.Universe().Known().Root
	m := t.ResolveMethod(typemeta.EqualsMethodName, root)

	return m != nil && m.DeclaredOn != root
}
