// Package typemeta is the metadata model the introspection engine operates
// on: types, members, methods, and annotations, owned by an interning
// Universe.
//
// Key types:
//   - TypeInfo: identity and structural relationships of one type
//   - MemberInfo: a property or field declared directly on a type
//   - MethodInfo: a method signature, including operator-special methods
//   - Annotation: opaque metadata attached to a type or member
//   - Universe: interning store guaranteeing pointer identity per type
//
// Identity is the load-bearing invariant: the Universe interns every named
// type, instantiation, and array, so equality anywhere in the engine is
// pointer equality and never structural recursion.
package typemeta
