package display

import (
	"testing"

	"type-introspector/typemeta"
)

func TestFriendlyName(t *testing.T) {
	u := typemeta.NewUniverse()
	known := u.Known()

	pair := u.DefineGeneric("shop", "Pair", typemeta.TypeKindClass, nil, "K", "V")
	order := u.DefineClass("shop", "Order", nil)

	tests := []struct {
		name     string
		typ      *typemeta.TypeInfo
		expected string
	}{
		{"primitive alias", known.Int, "int"},
		{"root alias", known.Root, "object"},
		{"plain class", order, "Order"},
		{"flat array", u.ArrayOf(known.Int, 1), "int[]"},
		{"two dimensional array", u.ArrayOf(known.Int, 2), "int[,]"},
		{"three dimensional array", u.ArrayOf(known.String, 3), "string[,,]"},
		{"nullable", u.Instantiate(known.Nullable, known.Int), "int?"},
		{"closed generic", u.Instantiate(pair, known.Int, known.String), "Pair<int, string>"},
		{"open definition", pair, "Pair<K, V>"},
		{"nested generic", u.Instantiate(pair, known.Int, u.Instantiate(known.Nullable, known.Bool)), "Pair<int, bool?>"},
		{"array of nullable", u.ArrayOf(u.Instantiate(known.Nullable, known.Int), 1), "int?[]"},
		{"nullable definition", known.Nullable, "Nullable<T>"},
		{"tuple", u.Instantiate(known.Tuples[1], known.Int, known.String), "Tuple<int, string>"},
		{"type parameter", pair.GenericArgs[0], "K"},
		{"array of class", u.ArrayOf(order, 2), "Order[,]"},
		{"nil", nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FriendlyName(tt.typ); got != tt.expected {
				t.Errorf("FriendlyName(%v) = %q, want %q", tt.typ, got, tt.expected)
			}
		})
	}
}

func TestFriendlyNameIsDeterministic(t *testing.T) {
	u := typemeta.NewUniverse()
	known := u.Known()

	typ := u.Instantiate(known.KeyValuePair, known.String, u.ArrayOf(known.Float64, 2))

	first := FriendlyName(typ)
	for range 10 {
		if got := FriendlyName(typ); got != first {
			t.Fatalf("FriendlyName changed between calls: %q then %q", first, got)
		}
	}

	if first != "KeyValuePair<string, float64[,]>" {
		t.Errorf("FriendlyName = %q, want %q", first, "KeyValuePair<string, float64[,]>")
	}
}
