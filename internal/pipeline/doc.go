// Package pipeline implements the Markdown-to-LaTeX conversion pipeline.
//
// The pipeline is a fixed sequence of stages applied to a single working
// string:
//
//	PROTECT -> HEADERS -> NOTES -> FIGURES -> TABLES -> INLINE_FORMATTING ->
//	LISTS -> LINKS -> CITATIONS -> CROSS_REFS -> PAGE_BREAKS -> COMMENTS ->
//	RESTORE
//
// PROTECT hides code, math, and raw LaTeX spans behind opaque placeholder
// tokens so the element converters never see syntax-sensitive content.
// RESTORE runs exactly once, after every other stage, and substitutes the
// original spans back.
//
// Each element converter is a pure function (text, *Context) -> text. The
// Context carries the per-build label registry and warning list; nothing in
// this package holds global state, so concurrent document builds are safe.
//
// Malformed manuscript content never aborts a conversion. A converter that
// cannot parse a construct it matched leaves the occurrence untouched and
// records a Warning; the caller receives all warnings alongside the output.
package pipeline
