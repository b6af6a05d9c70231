package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-introspector/typemeta"
)

type testWorld struct {
	u *typemeta.Universe

	sensitive, display *typemeta.TypeInfo

	base, derived         *typemeta.TypeInfo
	baseProp, derivedProp *typemeta.MemberInfo
}

// newTestWorld declares two annotation types and a two-level hierarchy where
// only the base level carries annotations, on the type and on a property
// that the derived type re-declares.
func newTestWorld() *testWorld {
	u := typemeta.NewUniverse()
	w := &testWorld{u: u}

	w.sensitive = u.DefineClass("marks", "Sensitive", nil)
	w.display = u.DefineClass("marks", "Display", nil)

	w.base = u.DefineClass("shop", "Entity", nil)
	w.base.Annotations = append(w.base.Annotations,
		typemeta.Annotation{Type: w.sensitive, Data: map[string]any{"level": 2}})

	w.baseProp = w.base.AddProperty("Name", u.Known().String, typemeta.VisibilityPublic)
	w.baseProp.Annotations = append(w.baseProp.Annotations,
		typemeta.Annotation{Type: w.display, Data: map[string]any{"order": 1}})

	w.derived = u.DefineClass("shop", "Order", w.base)
	w.derivedProp = w.derived.AddProperty("Name", u.Known().String, typemeta.VisibilityPublic)

	return w
}

func TestHas_OnTypes(t *testing.T) {
	w := newTestWorld()

	// Directly declared.
	assert.True(t, Has(w.base, w.sensitive, false))

	// Declared only on the base: invisible without inheritance, visible with.
	assert.False(t, Has(w.derived, w.sensitive, false))
	assert.True(t, Has(w.derived, w.sensitive, true))

	// Never declared at all.
	assert.False(t, Has(w.derived, w.display, true))
}

func TestHas_OnMembers(t *testing.T) {
	w := newTestWorld()

	// The derived re-declaration has no annotation of its own.
	assert.False(t, Has(w.derivedProp, w.display, false))
	assert.True(t, Has(w.derivedProp, w.display, true))

	assert.True(t, Has(w.baseProp, w.display, false))
}

func TestAll_MarksInheritedRecords(t *testing.T) {
	w := newTestWorld()

	direct := All(w.base, w.sensitive, true)
	require.Len(t, direct, 1)
	assert.False(t, direct[0].Inherited)

	inherited := All(w.derived, w.sensitive, true)
	require.Len(t, inherited, 1)
	assert.True(t, inherited[0].Inherited)
	assert.Equal(t, 2, inherited[0].Data["level"])

	// Surfacing a record never flips the stored copy.
	assert.False(t, w.base.Annotations[0].Inherited)
}

func TestAll_NearestDeclarationFirst(t *testing.T) {
	w := newTestWorld()

	// The derived type declares its own record of the same annotation type.
	w.derived.Annotations = append(w.derived.Annotations,
		typemeta.Annotation{Type: w.sensitive, Data: map[string]any{"level": 5}})

	all := All(w.derived, w.sensitive, true)
	require.Len(t, all, 2)
	assert.False(t, all[0].Inherited)
	assert.Equal(t, 5, all[0].Data["level"])
	assert.True(t, all[1].Inherited)
	assert.Equal(t, 2, all[1].Data["level"])
}

func TestAllMatching_FiltersByPayload(t *testing.T) {
	w := newTestWorld()

	highOnly := func(ann typemeta.Annotation) bool {
		level, ok := ann.Data["level"].(int)
		return ok && level >= 3
	}

	assert.Empty(t, AllMatching(w.base, w.sensitive, highOnly, false))
	assert.False(t, HasMatching(w.base, w.sensitive, highOnly, false))

	w.base.Annotations = append(w.base.Annotations,
		typemeta.Annotation{Type: w.sensitive, Data: map[string]any{"level": 9}})

	matched := AllMatching(w.base, w.sensitive, highOnly, false)
	require.Len(t, matched, 1)
	assert.Equal(t, 9, matched[0].Data["level"])
	assert.True(t, HasMatching(w.base, w.sensitive, highOnly, false))
}

func TestQueries_AbsenceIsEmpty(t *testing.T) {
	w := newTestWorld()

	assert.Empty(t, All(w.derivedProp, w.sensitive, true))
	assert.False(t, Has(nil, w.sensitive, true))
	assert.Empty(t, All(w.base, nil, true))
}

func TestQueries_TypedNilSubjects(t *testing.T) {
	w := newTestWorld()

	// A nil pointer wrapped in the Subject interface is not interface-nil;
	// it still answers with absence instead of panicking.
	assert.False(t, Has((*typemeta.TypeInfo)(nil), w.sensitive, true))
	assert.Empty(t, All((*typemeta.MemberInfo)(nil), w.display, true))

	// The root's base is exactly such a value.
	assert.False(t, Has(w.u.Known().Root.Base, w.sensitive, true))
}
