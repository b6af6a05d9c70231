package goload

import (
	"fmt"
	"go/types"

	"type-introspector/typemeta"
)

// translate maps a go/types type onto the universe. Returns nil for shapes
// with no metadata counterpart (channels, funcs, unions, unseeded type
// parameters); callers decide whether that warrants a diagnostic.
func (l *Loader) translate(t types.Type) *typemeta.TypeInfo {
	t = types.Unalias(t)

	// Check cache to handle recursive types
	if cached, ok := l.cache[t]; ok {
		return cached
	}

	known := l.universe.Known()

	switch tt := t.(type) {
	case *types.Named:
		return l.translateNamed(tt)

	case *types.Basic:
		return l.memo(t, l.basicType(tt))

	case *types.Pointer:
		elem := l.translate(tt.Elem())
		if elem == nil {
			return nil
		}

		return l.memo(t, l.universe.Instantiate(known.Nullable, elem))

	case *types.Slice:
		elem := l.translate(tt.Elem())
		if elem == nil {
			return nil
		}

		return l.memo(t, l.universe.ArrayOf(elem, 1))

	case *types.Array:
		elem := l.translate(tt.Elem())
		if elem == nil {
			return nil
		}

		return l.memo(t, l.universe.ArrayOf(elem, 1))

	case *types.Map:
		key := l.translate(tt.Key())
		value := l.translate(tt.Elem())
		if key == nil || value == nil {
			return nil
		}

		return l.memo(t, l.universe.Instantiate(l.goMapDef(), key, value))

	case *types.Interface:
		// Anonymous empty interface is the root; anonymous non-empty
		// interfaces have no identity to hang a contract on.
		if tt.Empty() {
			return l.memo(t, known.Root)
		}

		return nil

	case *types.TypeParam:
		// Parameters are seeded into the cache by their enclosing generic
		// definition; reaching here means the shape is not translatable.
		return nil

	default:
		return nil
	}
}

// memo records a translation in the per-load cache.
func (l *Loader) memo(t types.Type, info *typemeta.TypeInfo) *typemeta.TypeInfo {
	if info != nil {
		l.cache[t] = info
	}

	return info
}

// basicType maps a go/types basic kind to the built-in primitives. Complex
// numbers and unsafe pointers have no counterpart and yield nil.
func (l *Loader) basicType(b *types.Basic) *typemeta.TypeInfo {
	known := l.universe.Known()

	switch b.Kind() {
	case types.Bool, types.UntypedBool:
		return known.Bool
	case types.String, types.UntypedString:
		return known.String
	case types.Int, types.UntypedInt:
		return known.Int
	case types.Int8:
		return known.Int8
	case types.Int16:
		return known.Int16
	case types.Int32, types.UntypedRune:
		return known.Int32
	case types.Int64:
		return known.Int64
	case types.Uint, types.Uintptr:
		return known.Uint
	case types.Uint8:
		return known.Uint8
	case types.Uint16:
		return known.Uint16
	case types.Uint32:
		return known.Uint32
	case types.Uint64:
		return known.Uint64
	case types.Float32:
		return known.Float32
	case types.Float64, types.UntypedFloat:
		return known.Float64
	default:
		return nil
	}
}

// translateNamed maps a named declaration: plain named types, open generic
// definitions, and closed instantiations.
func (l *Loader) translateNamed(named *types.Named) *typemeta.TypeInfo {
	if named.TypeArgs().Len() > 0 {
		return l.translateInstance(named)
	}

	if named.TypeParams().Len() > 0 {
		return l.translateGenericDef(named)
	}

	obj := named.Obj()
	ns := pkgPath(obj)

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		info := l.universe.DefineClass(ns, obj.Name(), nil)
		// Pre-cache so self-referential fields resolve to the type being
		// built instead of recursing forever.
		l.memo(named, info)
		l.fillStruct(info, ut)

		return info

	case *types.Interface:
		info := l.universe.DefineInterface(ns, obj.Name())
		l.memo(named, info)
		l.fillInterface(info, ut)

		return info

	case *types.Basic:
		prim := l.basicType(ut)
		if prim == nil {
			return nil
		}

		var info *typemeta.TypeInfo
		if l.enums[obj] {
			info = l.universe.DefineEnum(ns, obj.Name())
		} else {
			info = l.universe.DefineValue(ns, obj.Name())
		}

		return l.memo(named, info)

	default:
		// Named composites (slices, maps, pointers) have no declaration
		// surface of their own; record them as their underlying shape.
		info := l.translate(ut)
		if info == nil {
			return nil
		}

		l.diags.AddInfo(CodeNamedComposite,
			fmt.Sprintf("recorded as its underlying shape %s", info.FullName()),
			qualifiedName(obj), "")

		return l.memo(named, info)
	}
}

// translateInstance maps a closed (or self-referential) instantiation of a
// generic named type.
func (l *Loader) translateInstance(named *types.Named) *typemeta.TypeInfo {
	def := l.translate(named.Origin())
	if def == nil || !def.IsGenericDef() {
		return nil
	}

	targs := named.TypeArgs()
	if targs.Len() != len(def.GenericArgs) {
		return nil
	}

	args := make([]*typemeta.TypeInfo, targs.Len())
	for i := range args {
		args[i] = l.translate(targs.At(i))
		if args[i] == nil {
			return nil
		}
	}

	return l.memo(named, l.universe.Instantiate(def, args...))
}

// translateGenericDef maps a generic named declaration to an open definition
// with one type parameter per Go type parameter.
func (l *Loader) translateGenericDef(named *types.Named) *typemeta.TypeInfo {
	obj := named.Obj()

	tparams := named.TypeParams()
	paramNames := make([]string, tparams.Len())
	for i := range paramNames {
		paramNames[i] = tparams.At(i).Obj().Name()
	}

	kind := typemeta.TypeKindClass
	if _, ok := named.Underlying().(*types.Interface); ok {
		kind = typemeta.TypeKindInterface
	}

	def := l.universe.DefineGeneric(pkgPath(obj), obj.Name(), kind, nil, paramNames...)
	l.memo(named, def)

	// Bind each Go type parameter to the definition's own parameter so body
	// types referencing them resolve during the fill.
	for i := range paramNames {
		l.cache[tparams.At(i)] = def.GenericArgs[i]
	}

	switch body := named.Underlying().(type) {
	case *types.Struct:
		l.fillStruct(def, body)

	case *types.Interface:
		l.fillInterface(def, body)

	default:
		l.diags.AddInfo(CodeNamedComposite,
			"generic composite body is not modeled", def.FullName(), "")
	}

	return def
}

// fillStruct populates a class from a struct body: embedded declarations
// wire the base type and interface list, ordinary fields become members, and
// struct tags become annotations. Flattening of extra embedded structs runs
// after the declared fields so outer declarations shadow promoted ones.
func (l *Loader) fillStruct(info *typemeta.TypeInfo, st *types.Struct) {
	type pending struct {
		embedded *typemeta.TypeInfo
		field    string
	}

	var flattens []pending

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		if field.Embedded() {
			if extra := l.embed(info, field); extra != nil {
				flattens = append(flattens, pending{embedded: extra, field: field.Name()})
			}

			continue
		}

		ft := l.translate(field.Type())
		if ft == nil {
			l.skip(info, field)

			continue
		}

		access := typemeta.VisibilityPrivate
		if field.Exported() {
			access = typemeta.VisibilityPublic
		}

		m := info.AddField(field.Name(), ft, access)
		m.Annotations = tagAnnotations(l.universe, st.Tag(i))
	}

	for _, p := range flattens {
		l.flatten(info, p.embedded, p.field)
	}
}

// embed wires one embedded field: interfaces join the interface list, the
// first embedded struct becomes the base type, and other shapes stay
// ordinary fields. Returns a non-nil type when an extra embedded struct
// still needs flattening.
func (l *Loader) embed(info *typemeta.TypeInfo, field *types.Var) *typemeta.TypeInfo {
	t := field.Type()
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		t = p.Elem()
	}

	et := l.translate(t)
	if et == nil {
		l.skip(info, field)

		return nil
	}

	switch et.Kind {
	case typemeta.TypeKindInterface:
		info.Interfaces = append(info.Interfaces, et)

		return nil

	case typemeta.TypeKindClass:
		if info.Base == l.universe.Known().Root {
			info.Base = et

			return nil
		}

		return et

	default:
		// Embedded values and enums carry no promotable structure; they
		// stay ordinary fields named after their type.
		access := typemeta.VisibilityPrivate
		if field.Exported() {
			access = typemeta.VisibilityPublic
		}

		info.AddField(field.Name(), et, access)

		return nil
	}
}

// flatten clones the embedded struct's directly declared members onto the
// outer type. Names already present win, matching Go's shadowing of promoted
// fields.
func (l *Loader) flatten(info *typemeta.TypeInfo, embedded *typemeta.TypeInfo, fieldName string) {
	seen := make(map[string]bool, len(info.Members))
	for _, m := range info.Members {
		seen[m.Name] = true
	}

	for _, m := range embedded.Members {
		if seen[m.Name] {
			continue
		}

		clone := *m
		clone.DeclaredOn = info
		info.Members = append(info.Members, &clone)
		seen[m.Name] = true
	}

	l.diags.AddInfo(CodeFlattenedEmbed,
		fmt.Sprintf("embedded %s flattened into promoted fields, only the first embedded struct forms the base", embedded.FullName()),
		info.FullName(), fieldName)
}

// fillInterface populates an interface from its body: embedded interfaces
// become parents, explicit methods surface as properties or methods.
func (l *Loader) fillInterface(info *typemeta.TypeInfo, it *types.Interface) {
	for i := 0; i < it.NumEmbeddeds(); i++ {
		parent := l.translate(it.EmbeddedType(i))
		if parent == nil || parent.Kind != typemeta.TypeKindInterface {
			l.diags.AddWarning(CodeSkippedShape,
				"embedded constraint is not a plain interface", info.FullName(), "")

			continue
		}

		info.Interfaces = append(info.Interfaces, parent)
	}

	for i := 0; i < it.NumExplicitMethods(); i++ {
		l.surfaceMethod(info, it.ExplicitMethod(i))
	}
}

// surfaceMethod projects one interface method: a parameterless single-result
// method reads as a property with the exportedness as getter visibility,
// anything else stays a method. Multi-result signatures are skipped.
func (l *Loader) surfaceMethod(info *typemeta.TypeInfo, m *types.Func) {
	sig := m.Type().(*types.Signature)

	if sig.Results().Len() > 1 {
		l.diags.AddWarning(CodeSkippedShape,
			"multi-result method is not translatable", info.FullName(), m.Name())

		return
	}

	access := typemeta.VisibilityPrivate
	if m.Exported() {
		access = typemeta.VisibilityPublic
	}

	var ret *typemeta.TypeInfo
	if sig.Results().Len() == 1 {
		ret = l.translate(sig.Results().At(0).Type())
		if ret == nil {
			l.diags.AddWarning(CodeSkippedShape,
				"result type is not translatable", info.FullName(), m.Name())

			return
		}
	}

	if sig.Params().Len() == 0 && ret != nil {
		info.AddProperty(m.Name(), ret, access)

		return
	}

	params := make([]*typemeta.TypeInfo, sig.Params().Len())
	for i := range params {
		params[i] = l.translate(sig.Params().At(i).Type())
		if params[i] == nil {
			l.diags.AddWarning(CodeSkippedShape,
				"parameter type is not translatable", info.FullName(), m.Name())

			return
		}
	}

	method := info.AddMethod(m.Name(), ret, params...)
	method.Access = access
}

// goMapDef lazily defines go.Map`2, the shape backing Go map types.
func (l *Loader) goMapDef() *typemeta.TypeInfo {
	if l.mapDef == nil {
		l.mapDef = l.universe.DefineGeneric("go", "Map", typemeta.TypeKindClass, nil, "K", "V")
	}

	return l.mapDef
}

// skip records a field whose type has no translatable shape.
func (l *Loader) skip(info *typemeta.TypeInfo, field *types.Var) {
	l.diags.AddWarning(CodeSkippedShape,
		fmt.Sprintf("type %s is not translatable", field.Type()), info.FullName(), field.Name())
	l.logger.Warn("skipped member", "type", info.FullName(), "member", field.Name())
}

func pkgPath(obj *types.TypeName) string {
	if obj.Pkg() == nil {
		return ""
	}

	return obj.Pkg().Path()
}

func qualifiedName(obj *types.TypeName) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}

	return obj.Pkg().Path() + "." + obj.Name()
}
