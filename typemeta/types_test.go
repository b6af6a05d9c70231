package typemeta

import "testing"

func TestTypeKind_String(t *testing.T) {
	tests := []struct {
		kind     TypeKind
		expected string
	}{
		{TypeKindClass, "class"},
		{TypeKindInterface, "interface"},
		{TypeKindValue, "value"},
		{TypeKindEnum, "enum"},
		{TypeKindArray, "array"},
		{TypeKindParam, "type parameter"},
		{TypeKindUnknown, "unknown"},
		{TypeKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("TypeKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestVisibility_NonPrivate(t *testing.T) {
	tests := []struct {
		vis      Visibility
		expected bool
	}{
		{VisibilityNone, false},
		{VisibilityPrivate, false},
		{VisibilityProtected, true},
		{VisibilityPublic, true},
	}

	for _, tt := range tests {
		if got := tt.vis.NonPrivate(); got != tt.expected {
			t.Errorf("%v.NonPrivate() = %v, want %v", tt.vis, got, tt.expected)
		}
	}
}

func TestTypeInfo_FullName(t *testing.T) {
	u := NewUniverse()
	known := u.Known()

	tests := []struct {
		name     string
		typ      *TypeInfo
		expected string
	}{
		{"primitive", known.Int, "builtin.Int"},
		{"root", known.Root, "builtin.Object"},
		{"definition", known.Nullable, "builtin.Nullable`1"},
		{"instantiation", u.Instantiate(known.Nullable, known.Int), "builtin.Nullable`1[builtin.Int]"},
		{"array", u.ArrayOf(known.Int, 1), "builtin.Int[]"},
		{"matrix", u.ArrayOf(known.Int, 3), "builtin.Int[,,]"},
		{"nested", u.ArrayOf(u.Instantiate(known.Nullable, known.Int), 1), "builtin.Nullable`1[builtin.Int][]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.FullName(); got != tt.expected {
				t.Errorf("FullName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTypeInfo_String_Nil(t *testing.T) {
	var typ *TypeInfo
	if got := typ.String(); got != "<nil>" {
		t.Errorf("nil String() = %q, want %q", got, "<nil>")
	}
}
