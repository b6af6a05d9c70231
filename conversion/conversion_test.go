package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-introspector/typemeta"
)

func addOperator(t *typemeta.TypeInfo, token string, source, target *typemeta.TypeInfo) *typemeta.MethodInfo {
	op := t.AddMethod(token, target, source)
	op.IsStatic = true
	op.IsOperator = true

	return op
}

func TestFindOperators(t *testing.T) {
	u := typemeta.NewUniverse()
	known := u.Known()

	money := u.DefineClass("shop", "Money", nil)
	toFloat := addOperator(money, typemeta.OpImplicit, money, known.Float64)
	fromInt := addOperator(money, typemeta.OpExplicit, known.Int, money)

	got := FindOperators(money, money, known.Float64, Implicit)
	require.Len(t, got, 1)
	assert.Same(t, toFloat, got[0])

	got = FindOperators(money, known.Int, money, Explicit)
	require.Len(t, got, 1)
	assert.Same(t, fromInt, got[0])

	// Kind, source, and target must all line up.
	assert.Empty(t, FindOperators(money, money, known.Float64, Explicit))
	assert.Empty(t, FindOperators(money, money, known.Float32, Implicit))
	assert.Empty(t, FindOperators(money, known.Int64, money, Explicit))
}

func TestFindOperators_CandidateRules(t *testing.T) {
	u := typemeta.NewUniverse()
	known := u.Known()

	money := u.DefineClass("shop", "Money", nil)

	instance := addOperator(money, typemeta.OpImplicit, money, known.Float64)
	instance.IsStatic = false

	hidden := addOperator(money, typemeta.OpImplicit, money, known.Float64)
	hidden.Access = typemeta.VisibilityPrivate

	// Right name and signature, but not operator-flagged.
	plain := money.AddMethod(typemeta.OpImplicit, known.Float64, money)
	plain.IsStatic = true

	assert.Empty(t, FindOperators(money, money, known.Float64, Implicit))

	// Operators on a base type never qualify for the derived type.
	derived := u.DefineClass("shop", "Discount", money)
	addOperator(money, typemeta.OpImplicit, money, known.Float64)
	assert.Empty(t, FindOperators(derived, money, known.Float64, Implicit))
	assert.Len(t, FindOperators(money, money, known.Float64, Implicit), 1)
}

func TestFindOperators_MultipleMatchesSurface(t *testing.T) {
	u := typemeta.NewUniverse()
	known := u.Known()

	money := u.DefineClass("shop", "Money", nil)
	first := addOperator(money, typemeta.OpExplicit, known.Int, money)
	second := addOperator(money, typemeta.OpExplicit, known.Int, money)

	got := FindOperators(money, known.Int, money, Explicit)

	require.Len(t, got, 2)
	assert.Same(t, first, got[0])
	assert.Same(t, second, got[1])
}

func TestFindOperators_AbsenceIsEmpty(t *testing.T) {
	u := typemeta.NewUniverse()
	known := u.Known()

	bare := u.DefineClass("shop", "Bare", nil)

	assert.Empty(t, FindOperators(bare, known.Int, bare, Implicit))
	assert.Empty(t, FindOperators(nil, known.Int, bare, Implicit))
	assert.Empty(t, FindOperators(bare, known.Int, bare, Kind(42)))
}
