package fieldset

import (
	"go/ast"
	"go/parser"
)

// Validate runs the full pipeline: resolve the type reference, assert the
// target is record-shaped, extract the literal's entries, and check every key
// against the declared fields. Stages run in that fixed order and the first
// failure terminates the call; on success the literal is returned exactly as
// given, same pointer, so callers can splice it into generated code.
func Validate(typeRef, lit ast.Expr, p Provider) (ast.Expr, error) {
	id, err := ResolveType(typeRef)
	if err != nil {
		return nil, err
	}
	desc, err := DescribeRecord(id, p)
	if err != nil {
		return nil, err
	}
	fs, err := ExtractFieldSet(lit)
	if err != nil {
		return nil, err
	}
	if err := checkKeys(fs.Entries, desc); err != nil {
		return nil, err
	}
	return lit, nil
}

// checkKeys fails on the first key, in source order, that the descriptor does
// not declare. One key, one error: fast feedback on the first typo beats an
// aggregate report here.
func checkKeys(entries []Entry, d *TypeDescriptor) error {
	for _, e := range entries {
		if !d.HasField(e.Key) {
			return errUnknownField(e.Key, d.Name())
		}
	}
	return nil
}

// ValidateSource parses both arguments as Go expressions and validates them.
// A type reference that does not even parse cannot name a type
// (unresolved_type); a field-set argument that does not parse cannot be a
// literal (invalid_field_set_shape).
func ValidateSource(typeRef, lit string, p Provider) (ast.Expr, error) {
	refExpr, err := parser.ParseExpr(typeRef)
	if err != nil {
		return nil, errUnresolved(typeRef)
	}
	litExpr, err := parser.ParseExpr(lit)
	if err != nil {
		return nil, errBadShape(lit)
	}
	return Validate(refExpr, litExpr, p)
}
