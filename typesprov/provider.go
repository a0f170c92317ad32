// Package typesprov answers declared-field queries from compiled type
// information, loaded with golang.org/x/tools/go/packages. It is the provider
// the lint front-end uses: the declared fields come from the same packages
// the validated call sites live in.
package typesprov

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	fieldset "github.com/utopos/fieldset"
)

// Provider holds field lists for every named struct type found in the loaded
// packages. Immutable after Load; safe for concurrent lookups.
type Provider struct {
	fields map[string][]string
}

var _ fieldset.Provider = (*Provider)(nil)

// Load type-checks the packages matched by patterns and collects their named
// struct types. Each type answers under "pkgname.Type" and, when the bare
// name is unambiguous across the loaded set, under "Type" as well.
func Load(dir string, patterns ...string) (*Provider, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("typesprov: load %v: %w", patterns, err)
	}
	p := &Provider{fields: make(map[string][]string)}
	bare := make(map[string]int)
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || tn.IsAlias() {
				continue
			}
			st, ok := tn.Type().Underlying().(*types.Struct)
			if !ok {
				continue
			}
			fields := make([]string, 0, st.NumFields())
			for i := 0; i < st.NumFields(); i++ {
				fields = append(fields, st.Field(i).Name())
			}
			p.fields[pkg.Types.Name()+"."+name] = fields
			bare[name]++
		}
	}
	// Bare-name aliases for types whose name appears exactly once.
	for qualified, fields := range p.fields {
		for i := len(qualified) - 1; i >= 0; i-- {
			if qualified[i] == '.' {
				name := qualified[i+1:]
				if bare[name] == 1 {
					p.fields[name] = fields
				}
				break
			}
		}
	}
	return p, nil
}

func (p *Provider) HasNamedFields(id fieldset.TypeID) bool {
	_, ok := p.lookup(id)
	return ok
}

func (p *Provider) DeclaredFieldNames(id fieldset.TypeID) []string {
	fields, _ := p.lookup(id)
	return fields
}

func (p *Provider) lookup(id fieldset.TypeID) ([]string, bool) {
	if fields, ok := p.fields[id.String()]; ok {
		return fields, true
	}
	if id.Qualifier != "" {
		if fields, ok := p.fields[id.Name]; ok {
			return fields, true
		}
	}
	return nil, false
}

// Types returns the qualified names the provider answers for, mainly for
// diagnostics.
func (p *Provider) Types() []string {
	out := make([]string, 0, len(p.fields))
	for name := range p.fields {
		out = append(out, name)
	}
	return out
}
