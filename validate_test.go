package fieldset_test

import (
	"go/ast"
	"go/parser"
	"testing"

	fieldset "github.com/utopos/fieldset"
)

var blogTypes = fieldset.StaticProvider{
	"Post":  {"author", "title"},
	"Empty": {},
}

func TestValidate_MapRoundTrip(t *testing.T) {
	typeRef, err := parser.ParseExpr(`Post{}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	lit, err := parser.ParseExpr(`map[string]any{"author": "Jakub"}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := fieldset.Validate(typeRef, lit, blogTypes)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if out != lit {
		t.Fatalf("expected the identical literal back, got a different expression")
	}
}

func TestValidate_KeyListRoundTrip(t *testing.T) {
	typeRef, _ := parser.ParseExpr(`Post`)
	lit, err := parser.ParseExpr(`[]fieldset.KV{{"author", "Jakub"}}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := fieldset.Validate(typeRef, lit, blogTypes)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if out != lit {
		t.Fatalf("expected the identical literal back")
	}
}

func TestValidate_Idempotent(t *testing.T) {
	typeRef, _ := parser.ParseExpr(`Post`)
	lit, _ := parser.ParseExpr(`map[string]any{"title": x}`)
	for i := 0; i < 2; i++ {
		out, err := fieldset.Validate(typeRef, lit, blogTypes)
		if err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
		if out != lit {
			t.Fatalf("pass %d: literal changed", i)
		}
	}
}

func TestValidate_OrderPreserved(t *testing.T) {
	// [b: 1, a: 2] stays [b, a]; validation never reorders.
	p := fieldset.StaticProvider{"T": {"a", "b"}}
	lit, _ := parser.ParseExpr(`[]fieldset.KV{{"b", 1}, {"a", 2}}`)
	out, err := fieldset.Validate(mustParse(t, `T`), lit, p)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	fs, err := fieldset.ExtractFieldSet(out)
	if err != nil {
		t.Fatalf("re-extract: %v", err)
	}
	if fs.Entries[0].Key != "b" || fs.Entries[1].Key != "a" {
		t.Fatalf("expected order [b a], got [%s %s]", fs.Entries[0].Key, fs.Entries[1].Key)
	}
}

func TestValidate_UnknownField(t *testing.T) {
	_, err := fieldset.ValidateSource(`Post`, `map[string]any{"title": "X", "tite": "Y"}`, blogTypes)
	ve, ok := fieldset.AsError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Kind != fieldset.KindUnknownField {
		t.Fatalf("expected unknown_field, got %s", ve.Kind)
	}
	if ve.OffendingKey != "tite" {
		t.Fatalf("expected offending key tite, got %q", ve.OffendingKey)
	}
}

func TestValidate_FirstUnknownWins(t *testing.T) {
	// Two unknown keys: always the first one in source order.
	for i := 0; i < 10; i++ {
		_, err := fieldset.ValidateSource(`Post`, `map[string]any{"k1": 1, "k2": 2}`, blogTypes)
		ve, ok := fieldset.AsError(err)
		if !ok {
			t.Fatalf("expected validation error, got %v", err)
		}
		if ve.OffendingKey != "k1" {
			t.Fatalf("expected k1, got %q", ve.OffendingKey)
		}
	}
}

func TestValidate_ZeroFieldRecord(t *testing.T) {
	// A record with no fields is valid and rejects any non-empty set.
	if _, err := fieldset.ValidateSource(`Empty`, `map[string]any{}`, blogTypes); err != nil {
		t.Fatalf("empty set against empty record: %v", err)
	}
	_, err := fieldset.ValidateSource(`Empty`, `map[string]any{"a": 1}`, blogTypes)
	ve, ok := fieldset.AsError(err)
	if !ok || ve.Kind != fieldset.KindUnknownField {
		t.Fatalf("expected unknown_field, got %v", err)
	}
}

func TestValidate_NotARecordType(t *testing.T) {
	_, err := fieldset.ValidateSource(`Plain`, `map[string]any{"a": 1}`, blogTypes)
	ve, ok := fieldset.AsError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Kind != fieldset.KindNotARecordType {
		t.Fatalf("expected not_a_record_type, got %s", ve.Kind)
	}
}

func TestValidate_ShapeRejection(t *testing.T) {
	for _, lit := range []string{`123`, `fields`, `buildFields()`} {
		_, err := fieldset.ValidateSource(`Post`, lit, blogTypes)
		ve, ok := fieldset.AsError(err)
		if !ok || ve.Kind != fieldset.KindInvalidFieldSetShape {
			t.Fatalf("literal %q: expected invalid_field_set_shape, got %v", lit, err)
		}
	}
}

func TestValidate_StageOrder(t *testing.T) {
	// A bad type reference wins over a bad literal: stages run in order.
	_, err := fieldset.ValidateSource(`123`, `456`, blogTypes)
	ve, ok := fieldset.AsError(err)
	if !ok || ve.Kind != fieldset.KindUnresolvedType {
		t.Fatalf("expected unresolved_type first, got %v", err)
	}
	// A non-record type wins over a bad literal too.
	_, err = fieldset.ValidateSource(`Plain`, `456`, blogTypes)
	ve, ok = fieldset.AsError(err)
	if !ok || ve.Kind != fieldset.KindNotARecordType {
		t.Fatalf("expected not_a_record_type before shape check, got %v", err)
	}
}

func TestValidateSource_ParseFailures(t *testing.T) {
	_, err := fieldset.ValidateSource(`:::`, `map[string]any{}`, blogTypes)
	if ve, ok := fieldset.AsError(err); !ok || ve.Kind != fieldset.KindUnresolvedType {
		t.Fatalf("expected unresolved_type for unparsable reference, got %v", err)
	}
	_, err = fieldset.ValidateSource(`Post`, `{{{`, blogTypes)
	if ve, ok := fieldset.AsError(err); !ok || ve.Kind != fieldset.KindInvalidFieldSetShape {
		t.Fatalf("expected invalid_field_set_shape for unparsable literal, got %v", err)
	}
}

func mustParse(t *testing.T, src string) ast.Expr {
	t.Helper()
	expr, err := parser.ParseExpr(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return expr
}
