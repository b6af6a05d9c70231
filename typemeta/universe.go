package typemeta

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// BuiltinNamespace is the namespace of the installed primitives and
// well-known shapes.
const BuiltinNamespace = "builtin"

// WellKnown bundles the canonical shapes every Universe installs at creation.
type WellKnown struct {
	Root *TypeInfo // builtin.Object, ultimate ancestor of every class chain

	Bool    *TypeInfo
	String  *TypeInfo
	Int     *TypeInfo
	Int8    *TypeInfo
	Int16   *TypeInfo
	Int32   *TypeInfo
	Int64   *TypeInfo
	Uint    *TypeInfo
	Uint8   *TypeInfo
	Uint16  *TypeInfo
	Uint32  *TypeInfo
	Uint64  *TypeInfo
	Float32 *TypeInfo
	Float64 *TypeInfo

	Nullable     *TypeInfo    // builtin.Nullable`1
	KeyValuePair *TypeInfo    // builtin.KeyValuePair`2
	Tuples       [8]*TypeInfo // builtin.Tuple`1 .. builtin.Tuple`8

	// CompilerGenerated is the annotation type marking compiler-emitted
	// declarations (anonymous types, synthetic accessors).
	CompilerGenerated *TypeInfo
}

// Universe owns every TypeInfo of one metadata space and interns them so that
// identity comparison is pointer comparison. Named types and definitions are
// registered during a population phase; instantiations and arrays are interned
// on first use, concurrently safe, populate-once. Queries over a populated
// universe are read-only and need no coordination.
type Universe struct {
	mu    sync.RWMutex
	named map[string]*TypeInfo // full name -> named type or generic definition

	interned sync.Map // full name -> instantiation or array *TypeInfo

	instMu   sync.Mutex           // serializes instantiation builds
	building map[string]*TypeInfo // instantiations being filled, keyed by full name

	known WellKnown
}

// NewUniverse creates a universe with the built-in primitives and well-known
// generic shapes installed.
func NewUniverse() *Universe {
	u := &Universe{
		named:    make(map[string]*TypeInfo),
		building: make(map[string]*TypeInfo),
	}
	u.installBuiltins()

	return u
}

// Known returns the well-known shapes of this universe.
func (u *Universe) Known() *WellKnown {
	return &u.known
}

// Lookup returns the type with the given full name, or nil. Instantiations
// and arrays are found under their canonical names ("ns.List`1[builtin.Int]").
func (u *Universe) Lookup(fullName string) *TypeInfo {
	u.mu.RLock()
	t, ok := u.named[fullName]
	u.mu.RUnlock()

	if ok {
		return t
	}

	if v, ok := u.interned.Load(fullName); ok {
		return v.(*TypeInfo)
	}

	return nil
}

// Types returns a snapshot of all named types and definitions, sorted by full
// name. Interned instantiations and arrays are not listed.
func (u *Universe) Types() []*TypeInfo {
	u.mu.RLock()
	out := make([]*TypeInfo, 0, len(u.named))
	for _, t := range u.named {
		out = append(out, t)
	}
	u.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].FullName() < out[j].FullName() })

	return out
}

// DefineClass registers a reference type. A nil base defaults to the root.
// Registering an already-known full name returns the existing type.
func (u *Universe) DefineClass(ns, name string, base *TypeInfo) *TypeInfo {
	if base == nil {
		base = u.known.Root
	}

	return u.define(&TypeInfo{Name: name, Namespace: ns, Kind: TypeKindClass, Base: base})
}

// DefineValue registers a value type deriving from the root.
func (u *Universe) DefineValue(ns, name string) *TypeInfo {
	return u.define(&TypeInfo{Name: name, Namespace: ns, Kind: TypeKindValue, Base: u.known.Root})
}

// DefineEnum registers a named constant-set type deriving from the root.
func (u *Universe) DefineEnum(ns, name string) *TypeInfo {
	return u.define(&TypeInfo{Name: name, Namespace: ns, Kind: TypeKindEnum, Base: u.known.Root})
}

// DefineInterface registers an interface extending the given parents.
func (u *Universe) DefineInterface(ns, name string, parents ...*TypeInfo) *TypeInfo {
	return u.define(&TypeInfo{Name: name, Namespace: ns, Kind: TypeKindInterface, Interfaces: parents})
}

// DefineGeneric registers an open generic definition of the given kind with
// one fresh type parameter per name. The arity suffix is appended to the
// name ("Pair" with two parameters registers as "Pair`2"), the definition's
// GenericDef points at itself, and its GenericArgs are the parameters. Bases
// or parents that reference the parameters are attached by the caller after
// registration. A nil base defaults to the root for non-interface kinds.
func (u *Universe) DefineGeneric(ns, name string, kind TypeKind, base *TypeInfo, paramNames ...string) *TypeInfo {
	t := &TypeInfo{
		Name:      fmt.Sprintf("%s`%d", name, len(paramNames)),
		Namespace: ns,
		Kind:      kind,
		Base:      base,
	}
	if base == nil && kind != TypeKindInterface {
		t.Base = u.known.Root
	}

	t.GenericDef = t
	for _, pn := range paramNames {
		t.GenericArgs = append(t.GenericArgs, &TypeInfo{
			Name:      pn,
			Namespace: t.FullName(),
			Kind:      TypeKindParam,
			universe:  u,
		})
	}

	return u.define(t)
}

func (u *Universe) define(t *TypeInfo) *TypeInfo {
	t.universe = u

	u.mu.Lock()
	defer u.mu.Unlock()

	full := t.FullName()
	if existing, ok := u.named[full]; ok {
		return existing
	}
	u.named[full] = t

	return t
}

// Instantiate returns the closed instantiation of def with the given
// arguments, interning it on first use so repeat calls yield the same
// pointer. The definition's parameters are substituted through the base
// type, interfaces, members, and method signatures. Applying a definition
// to its own parameter list yields the definition itself. Panics when def
// is not a generic definition or the argument count differs from its arity.
func (u *Universe) Instantiate(def *TypeInfo, args ...*TypeInfo) *TypeInfo {
	if !def.IsGenericDef() {
		panic(fmt.Sprintf("typemeta: Instantiate(%s): not a generic definition", def))
	}
	if len(args) != len(def.GenericArgs) {
		panic(fmt.Sprintf("typemeta: Instantiate(%s): got %d arguments, want %d",
			def, len(args), len(def.GenericArgs)))
	}

	if v, ok := u.interned.Load(u.newInstantiation(def, args).FullName()); ok {
		return v.(*TypeInfo)
	}

	u.instMu.Lock()
	defer u.instMu.Unlock()

	return u.instantiate(def, args)
}

// instantiate builds and interns one instantiation under instMu. The record
// reaches u.interned only after substitution completes; recursive references
// to a record still being filled resolve through u.building, so readers on
// the lock-free path never observe a partially built type.
func (u *Universe) instantiate(def *TypeInfo, args []*TypeInfo) *TypeInfo {
	if sameTypes(def.GenericArgs, args) {
		return def
	}

	inst := u.newInstantiation(def, args)
	full := inst.FullName()

	if v, ok := u.interned.Load(full); ok {
		return v.(*TypeInfo)
	}
	if pending, ok := u.building[full]; ok {
		return pending
	}

	u.building[full] = inst
	inst.Base = u.substitute(def.Base, def, args)
	for _, it := range def.Interfaces {
		inst.Interfaces = append(inst.Interfaces, u.substitute(it, def, args))
	}
	for _, m := range def.Members {
		clone := *m
		clone.DeclaredOn = inst
		clone.Type = u.substitute(m.Type, def, args)
		inst.Members = append(inst.Members, &clone)
	}
	for _, m := range def.Methods {
		clone := *m
		clone.DeclaredOn = inst
		clone.Return = u.substitute(m.Return, def, args)
		clone.Params = make([]*TypeInfo, len(m.Params))
		for i, p := range m.Params {
			clone.Params[i] = u.substitute(p, def, args)
		}
		inst.Methods = append(inst.Methods, &clone)
	}
	delete(u.building, full)

	u.interned.Store(full, inst)

	return inst
}

// newInstantiation builds an unfilled instantiation record.
func (u *Universe) newInstantiation(def *TypeInfo, args []*TypeInfo) *TypeInfo {
	return &TypeInfo{
		Name:        def.Name,
		Namespace:   def.Namespace,
		Kind:        def.Kind,
		GenericDef:  def,
		GenericArgs: args,
		universe:    u,
	}
}

// sameTypes reports elementwise identity of two equal-length type lists.
func sameTypes(a, b []*TypeInfo) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// ArrayOf returns the interned array type with the given element and rank.
func (u *Universe) ArrayOf(elem *TypeInfo, rank int) *TypeInfo {
	if rank < 1 {
		panic(fmt.Sprintf("typemeta: ArrayOf(%s): rank %d, want at least 1", elem, rank))
	}

	arr := &TypeInfo{
		Name:     elem.Name + "[" + strings.Repeat(",", rank-1) + "]",
		Kind:     TypeKindArray,
		Base:     u.known.Root,
		Elem:     elem,
		Rank:     rank,
		universe: u,
	}

	actual, _ := u.interned.LoadOrStore(arr.FullName(), arr)

	return actual.(*TypeInfo)
}

// substitute maps a type appearing inside a generic definition onto the
// instantiation's argument space: parameters become their bound argument,
// generic types and arrays containing parameters rebuild recursively (the
// definition standing in for itself rebuilds into the instantiation being
// built), everything else passes through unchanged. Runs under instMu.
func (u *Universe) substitute(t, def *TypeInfo, args []*TypeInfo) *TypeInfo {
	switch {
	case t == nil:
		return nil

	case t.Kind == TypeKindParam:
		for i, p := range def.GenericArgs {
			if p == t {
				return args[i]
			}
		}
		// Parameter of an enclosing definition, not ours to bind.
		return t

	case t.GenericDef != nil:
		changed := false
		sub := make([]*TypeInfo, len(t.GenericArgs))
		for i, a := range t.GenericArgs {
			sub[i] = u.substitute(a, def, args)
			changed = changed || sub[i] != a
		}
		if !changed {
			return t
		}

		return u.instantiate(t.GenericDef, sub)

	case t.Kind == TypeKindArray:
		elem := u.substitute(t.Elem, def, args)
		if elem == t.Elem {
			return t
		}

		return u.ArrayOf(elem, t.Rank)

	default:
		return t
	}
}

func (u *Universe) installBuiltins() {
	u.known.Root = u.define(&TypeInfo{Name: "Object", Namespace: BuiltinNamespace, Kind: TypeKindClass})

	prims := []struct {
		name string
		dst  **TypeInfo
	}{
		{"Bool", &u.known.Bool},
		{"String", &u.known.String},
		{"Int", &u.known.Int},
		{"Int8", &u.known.Int8},
		{"Int16", &u.known.Int16},
		{"Int32", &u.known.Int32},
		{"Int64", &u.known.Int64},
		{"Uint", &u.known.Uint},
		{"Uint8", &u.known.Uint8},
		{"Uint16", &u.known.Uint16},
		{"Uint32", &u.known.Uint32},
		{"Uint64", &u.known.Uint64},
		{"Float32", &u.known.Float32},
		{"Float64", &u.known.Float64},
	}
	for _, p := range prims {
		*p.dst = u.DefineValue(BuiltinNamespace, p.name)
	}

	// The root declares the equality contract; primitives override it so
	// they report value semantics.
	u.known.Root.AddMethod(EqualsMethodName, u.known.Bool, u.known.Root)
	for _, p := range prims {
		(*p.dst).AddMethod(EqualsMethodName, u.known.Bool, u.known.Root)
	}

	u.known.Nullable = u.DefineGeneric(BuiltinNamespace, "Nullable", TypeKindValue, nil, "T")
	u.known.Nullable.AddProperty("HasValue", u.known.Bool, VisibilityPublic)
	u.known.Nullable.AddProperty("Value", u.known.Nullable.GenericArgs[0], VisibilityPublic)

	u.known.KeyValuePair = u.DefineGeneric(BuiltinNamespace, "KeyValuePair", TypeKindValue, nil, "K", "V")
	u.known.KeyValuePair.AddProperty("Key", u.known.KeyValuePair.GenericArgs[0], VisibilityPublic)
	u.known.KeyValuePair.AddProperty("Value", u.known.KeyValuePair.GenericArgs[1], VisibilityPublic)

	for i := range u.known.Tuples {
		params := make([]string, i+1)
		for j := range params {
			params[j] = fmt.Sprintf("T%d", j+1)
		}

		tuple := u.DefineGeneric(BuiltinNamespace, "Tuple", TypeKindClass, nil, params...)
		for j, p := range tuple.GenericArgs {
			slot := fmt.Sprintf("Item%d", j+1)
			if j == 7 {
				slot = "Rest"
			}
			tuple.AddProperty(slot, p, VisibilityPublic)
		}
		u.known.Tuples[i] = tuple
	}

	u.known.CompilerGenerated = u.DefineClass(BuiltinNamespace, "CompilerGenerated", nil)
}
