// Package display renders canonical human-readable type names for
// diagnostics.
package display

import (
	"strings"

	"type-introspector/classify"
	"type-introspector/typemeta"
)

// primitiveAlias maps installed primitive full names to keyword-style short
// names. Constructed once at startup and read-only afterwards.
var primitiveAlias = map[string]string{
	"builtin.Object":  "object",
	"builtin.Bool":    "bool",
	"builtin.String":  "string",
	"builtin.Int":     "int",
	"builtin.Int8":    "int8",
	"builtin.Int16":   "int16",
	"builtin.Int32":   "int32",
	"builtin.Int64":   "int64",
	"builtin.Uint":    "uint",
	"builtin.Uint8":   "uint8",
	"builtin.Uint16":  "uint16",
	"builtin.Uint32":  "uint32",
	"builtin.Uint64":  "uint64",
	"builtin.Float32": "float32",
	"builtin.Float64": "float64",
}

// FriendlyName returns the canonical display name of a type: primitive
// aliases, "Elem[,,]" for arrays with one comma per rank beyond the first,
// "Inner?" for closed nullable wrappers, and "Name<Arg1, Arg2>" for open and
// closed generics with the arity suffix stripped from the raw name.
// Deterministic, never fails, and always terminates because every recursion
// step strictly decreases structural depth.
func FriendlyName(t *typemeta.TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	if alias, ok := primitiveAlias[t.FullName()]; ok {
		return alias
	}

	if t.Kind == typemeta.TypeKindArray {
		return FriendlyName(t.Elem) + "[" + strings.Repeat(",", t.Rank-1) + "]"
	}

	if inner := classify.NullableOrActualType(t); inner != t {
		return FriendlyName(inner) + "?"
	}

	if t.GenericDef != nil {
		args := make([]string, len(t.GenericArgs))
		for i, a := range t.GenericArgs {
			args[i] = FriendlyName(a)
		}

		return stripArity(t.Name) + "<" + strings.Join(args, ", ") + ">"
	}

	return t.Name
}

// stripArity cuts the backtick suffix from a raw generic name ("Pair`2").
func stripArity(name string) string {
	if i := strings.IndexByte(name, '`'); i >= 0 {
		return name[:i]
	}

	return name
}
