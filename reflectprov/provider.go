// Package reflectprov answers declared-field queries from Go struct types
// registered at runtime. It backs the fieldset.Provider interface with
// reflection, so generator tooling can validate literals against the very
// structs it links.
package reflectprov

import (
	"reflect"
	"strings"
	"sync"

	fieldset "github.com/utopos/fieldset"
)

// Option configures a Registry.
type Option func(*Registry)

// WithTagKey renames fields through the given struct tag (for example
// "json"). The tag's first comma-separated element is used; a field tagged
// "-" is hidden from the declared list. Untagged fields keep their Go name.
func WithTagKey(key string) Option {
	return func(r *Registry) { r.tagKey = key }
}

// Registry maps type names to declared field lists. Safe for concurrent use;
// registration and lookup may interleave.
type Registry struct {
	mu     sync.RWMutex
	types  map[string][]string
	tagKey string
}

var _ fieldset.Provider = (*Registry)(nil)

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{types: make(map[string][]string)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register records v's struct type under its reflect name. Pointers are
// dereferenced first. Non-struct values are ignored and reported false.
func (r *Registry) Register(v any) bool {
	t := structType(v)
	if t == nil {
		return false
	}
	return r.register(t.Name(), t)
}

// RegisterAs records v's struct type under an explicit name, for callers that
// validate qualified references such as "blog.Post".
func (r *Registry) RegisterAs(name string, v any) bool {
	t := structType(v)
	if t == nil || name == "" {
		return false
	}
	return r.register(name, t)
}

func (r *Registry) register(name string, t reflect.Type) bool {
	fields := r.fieldNames(t)
	r.mu.Lock()
	r.types[name] = fields
	r.mu.Unlock()
	return true
}

func (r *Registry) HasNamedFields(id fieldset.TypeID) bool {
	_, ok := r.lookup(id)
	return ok
}

func (r *Registry) DeclaredFieldNames(id fieldset.TypeID) []string {
	fields, _ := r.lookup(id)
	return fields
}

func (r *Registry) lookup(id fieldset.TypeID) ([]string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if fields, ok := r.types[id.String()]; ok {
		return fields, true
	}
	if id.Qualifier != "" {
		if fields, ok := r.types[id.Name]; ok {
			return fields, true
		}
	}
	return nil, false
}

// fieldNames flattens t's exported fields in declaration order. Anonymous
// embedded structs contribute their promoted fields in place.
func (r *Registry) fieldNames(t reflect.Type) []string {
	out := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		if f.Anonymous {
			et := f.Type
			if et.Kind() == reflect.Ptr {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct {
				out = append(out, r.fieldNames(et)...)
				continue
			}
		}
		name := f.Name
		if r.tagKey != "" {
			if tag, ok := f.Tag.Lookup(r.tagKey); ok {
				tag, _, _ = strings.Cut(tag, ",")
				if tag == "-" {
					continue
				}
				if tag != "" {
					name = tag
				}
			}
		}
		out = append(out, name)
	}
	return out
}

func structType(v any) reflect.Type {
	if v == nil {
		return nil
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return t
}
