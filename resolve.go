package fieldset

import (
	"go/ast"
	"go/token"
)

// TypeID identifies a resolved target type. Qualifier carries the package
// alias when the reference is written pkg.Type; it is empty for bare names.
type TypeID struct {
	Qualifier string
	Name      string
}

// String renders the identity the way it was written: "pkg.Type" or "Type".
func (id TypeID) String() string {
	if id.Qualifier != "" {
		return id.Qualifier + "." + id.Name
	}
	return id.Name
}

// ResolveType extracts a type identity from a reference expression. Accepted
// forms are a bare or qualified type identifier, or an instance composite
// literal of such a type ("Post{...}", "&Post{...}"); the literal's field
// contents are ignored. Anything else fails with unresolved_type. No
// structural check happens here: the result only names something for the
// shape stage to query.
func ResolveType(ref ast.Expr) (TypeID, error) {
	switch e := ref.(type) {
	case *ast.Ident:
		return TypeID{Name: e.Name}, nil
	case *ast.SelectorExpr:
		if pkg, ok := e.X.(*ast.Ident); ok {
			return TypeID{Qualifier: pkg.Name, Name: e.Sel.Name}, nil
		}
	case *ast.CompositeLit:
		if id, ok := typeIdent(e.Type); ok {
			return id, nil
		}
	case *ast.UnaryExpr:
		if e.Op == token.AND {
			if cl, ok := e.X.(*ast.CompositeLit); ok {
				if id, ok := typeIdent(cl.Type); ok {
					return id, nil
				}
			}
		}
	case *ast.ParenExpr:
		return ResolveType(e.X)
	}
	return TypeID{}, errUnresolved(renderExpr(ref))
}

// typeIdent reads an identity out of a composite literal's constructor
// position. Map and slice constructors are not type references.
func typeIdent(expr ast.Expr) (TypeID, bool) {
	switch t := expr.(type) {
	case *ast.Ident:
		return TypeID{Name: t.Name}, true
	case *ast.SelectorExpr:
		if pkg, ok := t.X.(*ast.Ident); ok {
			return TypeID{Qualifier: pkg.Name, Name: t.Sel.Name}, true
		}
	}
	return TypeID{}, false
}
