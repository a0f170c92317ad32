package fieldset

import (
	"errors"
	"fmt"
)

// Validation kinds (exported consts for stable machine matching).
const (
	KindUnresolvedType       = "unresolved_type"
	KindNotARecordType       = "not_a_record_type"
	KindInvalidFieldSetShape = "invalid_field_set_shape"
	KindUnknownField         = "unknown_field"
)

// Error is the single failure type raised by validation. Exactly one kind is
// set, chosen by the first pipeline stage that rejects its input; later
// stages never run.
type Error struct {
	Kind    string // One of the Kind* consts above.
	Message string
	// OffendingKey names the first key, in source order, that the target type
	// does not declare. Set only for unknown_field.
	OffendingKey string
	// Fragment is a rendering of the offending expression, when one exists.
	Fragment string
}

// Error summarizes the failure as "<kind>: <message>".
func (e *Error) Error() string {
	return e.Kind + ": " + e.Message
}

// AsError extracts a validation *Error using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func errUnresolved(fragment string) *Error {
	return &Error{
		Kind:     KindUnresolvedType,
		Message:  fmt.Sprintf("cannot resolve %s to a type", fragment),
		Fragment: fragment,
	}
}

func errNotRecord(typeName string) *Error {
	return &Error{
		Kind:    KindNotARecordType,
		Message: fmt.Sprintf("%s does not declare a fixed field list", typeName),
	}
}

func errBadShape(fragment string) *Error {
	return &Error{
		Kind:     KindInvalidFieldSetShape,
		Message:  fmt.Sprintf("expected a map or key-list literal, got %s", fragment),
		Fragment: fragment,
	}
}

func errUnknownField(key, typeName string) *Error {
	return &Error{
		Kind:         KindUnknownField,
		Message:      fmt.Sprintf("unknown field %q on %s", key, typeName),
		OffendingKey: key,
	}
}
