package typemeta

import (
	"strings"

	"type-introspector/internal/common"
)

// Name tokens for operator-special and compiler-synthesized declarations.
const (
	OpImplicit = "op_Implicit" // implicit conversion operator
	OpExplicit = "op_Explicit" // explicit conversion operator

	EqualsMethodName     = "Equals"           // equality method resolved against the root
	SynthesizedClone     = "$Clone"           // clone method synthesized for record types
	EqualityContractName = "EqualityContract" // property synthesized for record types
	AnonymousMarker      = "AnonymousType"    // substring marking compiler-named anonymous types
)

// TypeKind classifies the shape of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindClass              // reference type with a base-type chain
	TypeKindInterface          // contract type, may extend several parents
	TypeKindValue              // value type (primitives, user value shapes)
	TypeKindEnum               // named constant-set type
	TypeKindArray              // array with element type and rank
	TypeKindParam              // unbound generic type parameter
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindClass:
		return "class"
	case TypeKindInterface:
		return "interface"
	case TypeKindValue:
		return "value"
	case TypeKindEnum:
		return "enum"
	case TypeKindArray:
		return "array"
	case TypeKindParam:
		return "type parameter"
	default:
		return common.UnknownStr
	}
}

// MemberKind discriminates the two member flavors.
type MemberKind int

const (
	MemberKindProperty MemberKind = iota
	MemberKindField
)

// String returns a human-readable representation of the MemberKind.
func (k MemberKind) String() string {
	switch k {
	case MemberKindProperty:
		return "property"
	case MemberKindField:
		return "field"
	default:
		return common.UnknownStr
	}
}

// Visibility is the accessibility of a member or of a property's get-accessor.
type Visibility int

const (
	VisibilityNone      Visibility = iota // no accessor exists
	VisibilityPrivate
	VisibilityProtected
	VisibilityPublic
)

// NonPrivate reports whether the visibility is protected or public.
func (v Visibility) NonPrivate() bool {
	return v >= VisibilityProtected
}

// String returns a human-readable representation of the Visibility.
func (v Visibility) String() string {
	switch v {
	case VisibilityNone:
		return "none"
	case VisibilityPrivate:
		return "private"
	case VisibilityProtected:
		return "protected"
	case VisibilityPublic:
		return "public"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes one type owned by a Universe.
//
// Within a Universe, two TypeInfo values describing the same type are the
// same pointer. That holds for closed generic instantiations and arrays too,
// which the Universe interns on construction, so identity questions are
// always pointer comparisons and never recurse structurally.
type TypeInfo struct {
	Name      string // simple name; generic definitions carry an arity suffix ("Pair`2")
	Namespace string // package path or logical namespace ("builtin" for installed shapes)
	Kind      TypeKind

	Base       *TypeInfo   // direct base type; nil for the root, interfaces, and type parameters
	Interfaces []*TypeInfo // directly implemented or extended interfaces, in declaration order

	// GenericDef is the generic definition this type instantiates. An open
	// definition points at itself; non-generic types have nil. GenericArgs
	// holds the definition's type parameters or the instantiation's bound
	// arguments, in order.
	GenericDef  *TypeInfo
	GenericArgs []*TypeInfo

	Elem *TypeInfo // array element type
	Rank int       // array rank (1 = one-dimensional)

	Members     []*MemberInfo // directly declared properties and fields, in declaration order
	Methods     []*MethodInfo // directly declared methods, in declaration order
	Annotations []Annotation  // annotations declared directly on the type

	universe *Universe
}

// FullName returns the canonical identity name: "Namespace.Name" for named
// types, with bound argument names appended for closed instantiations and a
// bracket suffix for arrays.
func (t *TypeInfo) FullName() string {
	if t.Kind == TypeKindArray {
		return t.Elem.FullName() + "[" + strings.Repeat(",", t.Rank-1) + "]"
	}

	full := t.Name
	if t.Namespace != "" {
		full = t.Namespace + "." + t.Name
	}

	if t.IsClosedGeneric() {
		names := make([]string, len(t.GenericArgs))
		for i, a := range t.GenericArgs {
			names[i] = a.FullName()
		}
		full += "[" + strings.Join(names, ",") + "]"
	}

	return full
}

// String returns the full name, or "<nil>" for a nil type.
func (t *TypeInfo) String() string {
	if t == nil {
		return "<nil>"
	}

	return t.FullName()
}

// Universe returns the universe that owns this type, nil for detached values.
func (t *TypeInfo) Universe() *Universe {
	return t.universe
}

// IsGenericDef reports whether this type is an open generic definition.
func (t *TypeInfo) IsGenericDef() bool {
	return t != nil && t.GenericDef == t
}

// IsClosedGeneric reports whether this type is an instantiation of a generic
// definition (all parameters bound).
func (t *TypeInfo) IsClosedGeneric() bool {
	return t != nil && t.GenericDef != nil && t.GenericDef != t
}

// DeclaredAnnotations returns the annotations declared directly on the type,
// none for a nil type.
func (t *TypeInfo) DeclaredAnnotations() []Annotation {
	if t == nil {
		return nil
	}

	return t.Annotations
}

// AddProperty appends a directly declared instance property and returns it so
// callers can adjust flags and annotations. The getter argument is the
// get-accessor's own visibility; VisibilityNone records a property without a
// readable accessor.
func (t *TypeInfo) AddProperty(name string, typ *TypeInfo, getter Visibility) *MemberInfo {
	m := &MemberInfo{
		Kind:       MemberKindProperty,
		Name:       name,
		DeclaredOn: t,
		Type:       typ,
		Access:     getter,
	}
	t.Members = append(t.Members, m)

	return m
}

// AddField appends a directly declared instance field and returns it.
func (t *TypeInfo) AddField(name string, typ *TypeInfo, access Visibility) *MemberInfo {
	m := &MemberInfo{
		Kind:       MemberKindField,
		Name:       name,
		DeclaredOn: t,
		Type:       typ,
		Access:     access,
	}
	t.Members = append(t.Members, m)

	return m
}

// AddMethod appends a directly declared public instance method and returns it.
// A nil ret records a method without a result.
func (t *TypeInfo) AddMethod(name string, ret *TypeInfo, params ...*TypeInfo) *MethodInfo {
	m := &MethodInfo{
		Name:       name,
		DeclaredOn: t,
		Return:     ret,
		Params:     params,
		Access:     VisibilityPublic,
	}
	t.Methods = append(t.Methods, m)

	return m
}

// MemberInfo describes a property or field declared directly on a type.
type MemberInfo struct {
	Kind       MemberKind
	Name       string
	DeclaredOn *TypeInfo  // type that declares this member
	Type       *TypeInfo  // value type of the property or field
	Access     Visibility // get-accessor visibility for properties, field visibility for fields
	IsIndexer  bool       // properties only
	IsStatic   bool

	// SyntheticAccessor marks a property accessor emitted by a compiler
	// rather than written by hand.
	SyntheticAccessor bool

	Annotations []Annotation
}

// String returns "DeclaringType.Name".
func (m *MemberInfo) String() string {
	if m == nil {
		return "<nil>"
	}

	return m.DeclaredOn.String() + "." + m.Name
}

// DeclaredAnnotations returns the annotations declared directly on the
// member, none for a nil member.
func (m *MemberInfo) DeclaredAnnotations() []Annotation {
	if m == nil {
		return nil
	}

	return m.Annotations
}

// MethodInfo describes a method declared directly on a type.
type MethodInfo struct {
	Name       string
	DeclaredOn *TypeInfo
	Return     *TypeInfo // nil when the method has no result
	Params     []*TypeInfo
	Access     Visibility
	IsStatic   bool
	IsOperator bool // operator-special method, named by an op_* token
}

// String returns "DeclaringType.Name".
func (m *MethodInfo) String() string {
	if m == nil {
		return "<nil>"
	}

	return m.DeclaredOn.String() + "." + m.Name
}

// Annotation attaches opaque metadata to a type or member. Type is the
// identity key; Data is a structured payload that is stored and filtered but
// never interpreted here.
type Annotation struct {
	Type *TypeInfo
	Data map[string]any

	// Inherited is false on stored records; query results surfaced from an
	// ancestor declaration carry true.
	Inherited bool
}
