package catalog

import (
	"sync"

	"type-introspector/typemeta"
)

// Cache memoizes catalogs per type identity. Populate-once, read-many: the
// first build for a type is stored and every later call returns the stored
// slice. Safe for concurrent use without coordination, and never stale,
// because type metadata is immutable for the process lifetime. Callers must
// treat returned slices as read-only.
type Cache struct {
	opts Options
	memo sync.Map // *typemeta.TypeInfo -> []*typemeta.MemberInfo
}

// NewCache creates a cache that builds catalogs with the given options.
func NewCache(opts Options) *Cache {
	return &Cache{opts: opts}
}

// Get returns the catalog for t, building and memoizing it on first use.
func (c *Cache) Get(t *typemeta.TypeInfo) []*typemeta.MemberInfo {
	if v, ok := c.memo.Load(t); ok {
		return v.([]*typemeta.MemberInfo)
	}

	actual, _ := c.memo.LoadOrStore(t, Build(t, c.opts))

	return actual.([]*typemeta.MemberInfo)
}
