package fieldset

// KV is the pair type for key-list literals at marked call sites.
type KV struct {
	Key   string
	Value any
}

// Checked returns fields unchanged. It exists to mark a call site for
// fieldlint, which validates the map literal's keys against the declared
// fields of target's type before the build is allowed to proceed. target is
// conventionally a zero-value instance literal, Post{}.
func Checked(target any, fields map[string]any) map[string]any {
	_ = target
	return fields
}

// CheckedList is Checked for the ordered key-list form.
func CheckedList(target any, pairs []KV) []KV {
	_ = target
	return pairs
}
