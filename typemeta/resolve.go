package typemeta

// ResolveMethod walks the base-type chain from t and returns the first method
// whose name and parameter types match, or nil. Parameter matching is
// identity-based; no parameters matches only methods declared without
// parameters. This is the signature-matching query the engine uses instead
// of reflective dispatch.
func (t *TypeInfo) ResolveMethod(name string, params ...*TypeInfo) *MethodInfo {
	for cur := t; cur != nil; cur = cur.Base {
		for _, m := range cur.Methods {
			if m.Name != name || len(m.Params) != len(params) {
				continue
			}

			matched := true
			for i, p := range m.Params {
				if p != params[i] {
					matched = false
					break
				}
			}
			if matched {
				return m
			}
		}
	}

	return nil
}

// BaseDeclaration returns the nearest member with the same name and kind
// declared on a base type of the member's declaring type, or nil. It is the
// step along a member's override chain used by inherited annotation queries.
func (m *MemberInfo) BaseDeclaration() *MemberInfo {
	if m == nil || m.DeclaredOn == nil {
		return nil
	}

	for cur := m.DeclaredOn.Base; cur != nil; cur = cur.Base {
		for _, c := range cur.Members {
			if c.Name == m.Name && c.Kind == m.Kind {
				return c
			}
		}
	}

	return nil
}
