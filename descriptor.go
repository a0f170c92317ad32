package fieldset

// TypeDescriptor is the immutable view of a record-shaped type: its rendered
// name and declared field names in declaration order. Descriptors are built
// fresh per validation call and never stored by the core.
type TypeDescriptor struct {
	name   string
	fields []string
	index  map[string]struct{}
}

// Name returns the rendered type identity the descriptor was built for.
func (d *TypeDescriptor) Name() string { return d.name }

// DeclaredFields returns the field names in declaration order.
func (d *TypeDescriptor) DeclaredFields() []string {
	out := make([]string, len(d.fields))
	copy(out, d.fields)
	return out
}

// HasField reports whether name is among the declared fields.
func (d *TypeDescriptor) HasField(name string) bool {
	_, ok := d.index[name]
	return ok
}

// DescribeRecord asserts that id names a record-shaped type and materializes
// its descriptor from the provider. A type with zero declared fields is a
// valid record (it simply rejects every non-empty field set); a type the
// provider cannot answer for fails with not_a_record_type.
func DescribeRecord(id TypeID, p Provider) (*TypeDescriptor, error) {
	if !p.HasNamedFields(id) {
		return nil, errNotRecord(id.String())
	}
	names := p.DeclaredFieldNames(id)
	d := &TypeDescriptor{
		name:   id.String(),
		fields: append([]string(nil), names...),
		index:  make(map[string]struct{}, len(names)),
	}
	for _, n := range d.fields {
		d.index[n] = struct{}{}
	}
	return d, nil
}
