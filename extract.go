package fieldset

import (
	"go/ast"
	"go/token"
	"strconv"
)

// Shape discriminates the two accepted literal forms.
type Shape int

const (
	// ShapeMap is a map composite literal with string-literal keys:
	// map[string]any{"author": v}.
	ShapeMap Shape = iota
	// ShapeKeyList is a slice composite literal of key/value pairs:
	// []fieldset.KV{{"author", v}}. Semantically the same as a map, written
	// as an ordered sequence.
	ShapeKeyList
)

// Entry is one key/value pair of a field-set literal. Value is the original
// sub-expression; the validator never inspects or evaluates it.
type Entry struct {
	Key   string
	Value ast.Expr
}

// FieldSet is the normalized view of a field-set literal. Expr is the exact
// expression the caller supplied; a successful validation hands it back
// untouched. Entries keep source order, duplicates included.
type FieldSet struct {
	Shape   Shape
	Entries []Entry
	Expr    ast.Expr
}

// ExtractFieldSet normalizes lit into ordered entries. Exactly two literal
// shapes are accepted, map and key-list; any other expression — a scalar, an
// identifier, a call, another container kind, or a map with computed keys —
// fails with invalid_field_set_shape carrying a rendering of the rejected
// expression. Nothing here consults the target type.
func ExtractFieldSet(lit ast.Expr) (*FieldSet, error) {
	cl, ok := lit.(*ast.CompositeLit)
	if !ok {
		return nil, errBadShape(renderExpr(lit))
	}
	switch cl.Type.(type) {
	case *ast.MapType:
		entries, ok := mapEntries(cl)
		if !ok {
			return nil, errBadShape(renderExpr(lit))
		}
		return &FieldSet{Shape: ShapeMap, Entries: entries, Expr: lit}, nil
	case *ast.ArrayType:
		entries, ok := keyListEntries(cl)
		if !ok {
			return nil, errBadShape(renderExpr(lit))
		}
		return &FieldSet{Shape: ShapeKeyList, Entries: entries, Expr: lit}, nil
	}
	return nil, errBadShape(renderExpr(lit))
}

// mapEntries unwraps a map literal in declaration order. Every element must
// be key: value with a string-literal key.
func mapEntries(cl *ast.CompositeLit) ([]Entry, bool) {
	entries := make([]Entry, 0, len(cl.Elts))
	for _, el := range cl.Elts {
		kv, ok := el.(*ast.KeyValueExpr)
		if !ok {
			return nil, false
		}
		key, ok := stringLit(kv.Key)
		if !ok {
			return nil, false
		}
		entries = append(entries, Entry{Key: key, Value: kv.Value})
	}
	return entries, true
}

// keyListEntries unwraps a slice-of-pairs literal in declaration order. Each
// element is a two-element composite {"key", value}, or the keyed spelling
// {Key: "key", Value: value}.
func keyListEntries(cl *ast.CompositeLit) ([]Entry, bool) {
	entries := make([]Entry, 0, len(cl.Elts))
	for _, el := range cl.Elts {
		pair, ok := el.(*ast.CompositeLit)
		if !ok {
			return nil, false
		}
		e, ok := pairEntry(pair)
		if !ok {
			return nil, false
		}
		entries = append(entries, e)
	}
	return entries, true
}

func pairEntry(pair *ast.CompositeLit) (Entry, bool) {
	if len(pair.Elts) != 2 {
		return Entry{}, false
	}
	// Positional: {"key", value}.
	if key, ok := stringLit(pair.Elts[0]); ok {
		return Entry{Key: key, Value: pair.Elts[1]}, true
	}
	// Keyed: {Key: "key", Value: value} in either order.
	var (
		key     string
		val     ast.Expr
		haveKey bool
		haveVal bool
	)
	for _, el := range pair.Elts {
		kv, ok := el.(*ast.KeyValueExpr)
		if !ok {
			return Entry{}, false
		}
		name, ok := kv.Key.(*ast.Ident)
		if !ok {
			return Entry{}, false
		}
		switch name.Name {
		case "Key":
			key, ok = stringLit(kv.Value)
			if !ok {
				return Entry{}, false
			}
			haveKey = true
		case "Value":
			val = kv.Value
			haveVal = true
		default:
			return Entry{}, false
		}
	}
	if !haveKey || !haveVal {
		return Entry{}, false
	}
	return Entry{Key: key, Value: val}, true
}

// stringLit reads the value of a string literal expression.
func stringLit(e ast.Expr) (string, bool) {
	bl, ok := e.(*ast.BasicLit)
	if !ok || bl.Kind != token.STRING {
		return "", false
	}
	s, err := strconv.Unquote(bl.Value)
	if err != nil {
		return "", false
	}
	return s, true
}
