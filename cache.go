package fieldset

import "sync"

// CachedProvider memoizes the field lists of an underlying Provider, keyed by
// rendered type identity. Validation is correct without it; wrap providers
// with expensive lookups when many call sites target the same types. Negative
// answers are cached too, so a provider whose universe grows mid-run should
// not be wrapped.
type CachedProvider struct {
	inner Provider
	cache sync.Map // map[string]*cachedFields
}

type cachedFields struct {
	ok     bool
	fields []string
}

// NewCachedProvider wraps inner with a read-through field-list cache.
func NewCachedProvider(inner Provider) *CachedProvider {
	return &CachedProvider{inner: inner}
}

var _ Provider = (*CachedProvider)(nil)

func (c *CachedProvider) entry(id TypeID) *cachedFields {
	key := id.String()
	if v, ok := c.cache.Load(key); ok {
		return v.(*cachedFields)
	}
	e := &cachedFields{}
	if c.inner.HasNamedFields(id) {
		e.ok = true
		e.fields = append([]string(nil), c.inner.DeclaredFieldNames(id)...)
	}
	actual, _ := c.cache.LoadOrStore(key, e)
	return actual.(*cachedFields)
}

func (c *CachedProvider) HasNamedFields(id TypeID) bool {
	return c.entry(id).ok
}

func (c *CachedProvider) DeclaredFieldNames(id TypeID) []string {
	return c.entry(id).fields
}
