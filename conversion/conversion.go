// Package conversion locates user-defined conversion operators between two
// types.
package conversion

import (
	"type-introspector/internal/common"
	"type-introspector/typemeta"
)

// Kind selects which operator family to search.
type Kind int

const (
	Implicit Kind = iota
	Explicit
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case Implicit:
		return "implicit"
	case Explicit:
		return "explicit"
	default:
		return common.UnknownStr
	}
}

// token maps the kind onto its operator-special method name.
func (k Kind) token() string {
	switch k {
	case Implicit:
		return typemeta.OpImplicit
	case Explicit:
		return typemeta.OpExplicit
	default:
		return ""
	}
}

// FindOperators returns the conversion operators declared directly on the
// given type that take exactly source and return exactly target, matching
// the requested kind by name token. Candidates must be public, static, and
// operator-flagged. Zero or more matches come back in declaration order;
// several qualifying overloads are surfaced as-is, deciding whether that is
// an error belongs to the caller.
func FindOperators(on, source, target *typemeta.TypeInfo, kind Kind) []*typemeta.MethodInfo {
	token := kind.token()
	if on == nil || token == "" {
		return nil
	}

	var out []*typemeta.MethodInfo
	for _, m := range on.Methods {
		if m.Name != token || !m.IsOperator || !m.IsStatic || m.Access != typemeta.VisibilityPublic {
			continue
		}
		if len(m.Params) != 1 || m.Params[0] != source || m.Return != target {
			continue
		}

		out = append(out, m)
	}

	return out
}
