package catalog

import (
	"testing"

	"type-introspector/typemeta"
)

func TestFindMember(t *testing.T) {
	u := typemeta.NewUniverse()
	known := u.Known()

	base := u.DefineClass("shop", "Entity", nil)
	baseID := base.AddProperty("ID", known.Int, typemeta.VisibilityPublic)

	derived := u.DefineClass("shop", "Order", base)
	stringID := derived.AddProperty("ID", known.String, typemeta.VisibilityPublic)
	total := derived.AddField("Total", known.Float64, typemeta.VisibilityPublic)

	twice := u.DefineClass("shop", "Dup", nil)
	twice.AddProperty("Code", known.Int, typemeta.VisibilityPublic)
	twice.AddField("Code", known.Int, typemeta.VisibilityPublic)

	tests := []struct {
		name      string
		typ       *typemeta.TypeInfo
		member    string
		preferred *typemeta.TypeInfo
		want      *typemeta.MemberInfo
	}{
		{"single direct hit", derived, "Total", nil, total},
		{"single inherited hit", base, "ID", nil, baseID},
		{"shadowed resolved by preference", derived, "ID", known.String, stringID},
		{"shadowed resolved to base", derived, "ID", known.Int, baseID},
		{"shadowed without matching preference", derived, "ID", known.Float64, nil},
		{"same type twice stays ambiguous", twice, "Code", known.Int, nil},
		{"absent member", derived, "Missing", nil, nil},
		{"nil type", nil, "ID", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindMember(tt.typ, tt.member, tt.preferred); got != tt.want {
				t.Errorf("FindMember(%v, %q, %v) = %v, want %v", tt.typ, tt.member, tt.preferred, got, tt.want)
			}
		})
	}
}

func TestFindMember_Interface(t *testing.T) {
	u := typemeta.NewUniverse()
	known := u.Known()

	parent := u.DefineInterface("shapes", "Identified")
	intID := parent.AddProperty("ID", known.Int, typemeta.VisibilityPublic)

	child := u.DefineInterface("shapes", "Entity", parent)
	guidID := child.AddProperty("ID", known.String, typemeta.VisibilityPublic)

	if got := FindMember(child, "ID", known.String); got != guidID {
		t.Errorf("preferred string declaration: got %v, want %v", got, guidID)
	}
	if got := FindMember(child, "ID", known.Int); got != intID {
		t.Errorf("preferred int declaration: got %v, want %v", got, intID)
	}
	if got := FindMember(child, "ID", known.Float64); got != nil {
		t.Errorf("unmatched preference: got %v, want nil", got)
	}
	if got := FindMember(parent, "ID", nil); got != intID {
		t.Errorf("single declaration: got %v, want %v", got, intID)
	}
}
