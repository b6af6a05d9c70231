package typemeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeInfo_ResolveMethod(t *testing.T) {
	u := NewUniverse()
	known := u.Known()

	base := u.DefineClass("shop", "Entity", nil)
	base.AddMethod("Validate", known.Bool)

	derived := u.DefineClass("shop", "Order", base)
	override := derived.AddMethod(EqualsMethodName, known.Bool, known.Root)

	// Declared directly.
	assert.Same(t, override, derived.ResolveMethod(EqualsMethodName, known.Root))

	// Inherited from the base chain.
	inherited := derived.ResolveMethod("Validate")
	require.NotNil(t, inherited)
	assert.Same(t, base, inherited.DeclaredOn)

	// The root's own equality method resolves when nothing overrides it.
	rootEquals := base.ResolveMethod(EqualsMethodName, known.Root)
	require.NotNil(t, rootEquals)
	assert.Same(t, known.Root, rootEquals.DeclaredOn)

	// Signature mismatches stay unresolved.
	assert.Nil(t, derived.ResolveMethod(EqualsMethodName))
	assert.Nil(t, derived.ResolveMethod(EqualsMethodName, known.Int))
	assert.Nil(t, derived.ResolveMethod("NoSuchMethod"))
}

func TestMemberInfo_BaseDeclaration(t *testing.T) {
	u := NewUniverse()
	known := u.Known()

	grandparent := u.DefineClass("shop", "Entity", nil)
	rootDecl := grandparent.AddProperty("ID", known.Int, VisibilityPublic)

	parent := u.DefineClass("shop", "Document", grandparent)

	child := u.DefineClass("shop", "Invoice", parent)
	childDecl := child.AddProperty("ID", known.Int, VisibilityPublic)

	// Skips levels without a matching declaration.
	assert.Same(t, rootDecl, childDecl.BaseDeclaration())
	assert.Nil(t, rootDecl.BaseDeclaration())

	// Kind must match: a same-named field is not an override of a property.
	sibling := u.DefineClass("shop", "Receipt", grandparent)
	fieldDecl := sibling.AddField("ID", known.Int, VisibilityPublic)
	assert.Nil(t, fieldDecl.BaseDeclaration())

	var missing *MemberInfo
	assert.Nil(t, missing.BaseDeclaration())
}
