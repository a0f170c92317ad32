package blog

// Post is a sample record type for provider tests.
type Post struct {
	Author string
	Title  string
	likes  int
}

// Empty has no fields at all; still a record.
type Empty struct{}

// Plain is named but not record-shaped.
type Plain int
