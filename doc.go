package fieldset

// Package fieldset validates literal field sets against the declared fields
// of a target record type at build time, before the literal is spliced into
// generated code. It catches typos and schema drift that would otherwise
// surface at runtime.
//
// The validator is a straight pipeline over parsed Go expressions:
//
//	resolve type reference -> assert record shape -> extract entries -> check keys
//
// Each stage fails fast with a classified *Error; on success the original
// literal expression is handed back untouched so callers can emit it as-is.
//
// Design policy:
// - Keep only public APIs in the root package; providers live in their own
//   packages (reflectprov, typesprov) behind the Provider interface.
// - The core never evaluates value expressions and never mutates its input.
// - No cross-call state: descriptors are rebuilt per call, with CachedProvider
//   available as an opt-in read-through cache.
//
// Typical usage:
//
//	id := fieldset.StaticProvider{"Post": {"author", "title"}}
//	out, err := fieldset.ValidateSource(`Post`, `map[string]any{"author": name}`, id)
