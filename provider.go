package fieldset

// Provider supplies declared-field information for resolved types. It is the
// external reflection collaborator of the pipeline; implementations answer
// read-only queries and must be safe for concurrent use when validation runs
// one task per call site.
type Provider interface {
	// HasNamedFields reports whether id names a type with a fixed, named
	// field list.
	HasNamedFields(id TypeID) bool
	// DeclaredFieldNames returns the type's field names in declaration order.
	// The result is unspecified when HasNamedFields reports false.
	DeclaredFieldNames(id TypeID) []string
}

// StaticProvider answers from a fixed name -> fields table. Keys are rendered
// identities ("Post" or "blog.Post"); a qualified lookup falls back to the
// bare name so fabricated descriptors stay cheap to write in tests.
type StaticProvider map[string][]string

var _ Provider = StaticProvider(nil)

func (p StaticProvider) lookup(id TypeID) ([]string, bool) {
	if fs, ok := p[id.String()]; ok {
		return fs, true
	}
	if id.Qualifier != "" {
		if fs, ok := p[id.Name]; ok {
			return fs, true
		}
	}
	return nil, false
}

func (p StaticProvider) HasNamedFields(id TypeID) bool {
	_, ok := p.lookup(id)
	return ok
}

func (p StaticProvider) DeclaredFieldNames(id TypeID) []string {
	fs, _ := p.lookup(id)
	return fs
}
