package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholder tokens wrap a monotonically increasing index in Unicode
// Private Use Area characters. These are guaranteed to not conflict with
// manuscript prose, Markdown syntax, or LaTeX control sequences, so a
// placeholder can never be mangled by a later converter.
const (
	spanStart = "\uE000"
	spanEnd   = "\uE001"
)

// SpanCategory classifies a protected span.
type SpanCategory int

const (
	SpanCode SpanCategory = iota
	SpanMath
	SpanRawTeX
	SpanComment
	SpanTable
)

// String returns the category name for diagnostics.
func (c SpanCategory) String() string {
	switch c {
	case SpanCode:
		return "code"
	case SpanMath:
		return "math"
	case SpanRawTeX:
		return "raw-tex"
	case SpanComment:
		return "comment"
	case SpanTable:
		return "table"
	}
	return "unknown"
}

// ProtectedSpan is a contiguous piece of text temporarily replaced by a
// placeholder so later converters cannot see it.
type ProtectedSpan struct {
	Placeholder string
	Original    string
	Category    SpanCategory
}

// Store holds the protected spans of one document, in protection order.
// Restore substitutes them back in reverse order, so a span whose text
// contains an earlier span's placeholder is re-expanded first.
type Store struct {
	spans []ProtectedSpan
}

// Patterns scanned by Protect, leftmost-first within each category.
// Category order matters: once a span is protected, its inner content is
// never rescanned by a later category, so a dollar sign inside a code block
// can never be misread as a math delimiter.
var (
	codeEnvPattern     = regexp.MustCompile(`(?s)\\begin\{(lstlisting|verbatim)\}.*?\\end\{(?:lstlisting|verbatim)\}`)
	doubleTickPattern  = regexp.MustCompile("``[^`]+``")
	singleTickPattern  = regexp.MustCompile("`[^`\n]+`")
	equationEnvPattern = regexp.MustCompile(`(?s)\\begin\{equation\}.*?\\end\{equation\}`)
	displayMathPattern = regexp.MustCompile(`(?s)\$\$.+?\$\$`)
	inlineMathPattern  = regexp.MustCompile(`\$[^$\n]+\$`)
	rawTeXPattern      = regexp.MustCompile(`(?s)\{\{tex:.*?\}\}`)
	htmlCommentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
)

// protectionPasses is the ordered table of (pattern, category) pairs tried by
// Protect. First match wins; passes never overlap.
var protectionPasses = []struct {
	pattern  *regexp.Regexp
	category SpanCategory
}{
	{codeEnvPattern, SpanCode},
	{doubleTickPattern, SpanCode},
	{singleTickPattern, SpanCode},
	{equationEnvPattern, SpanMath},
	{displayMathPattern, SpanMath},
	{inlineMathPattern, SpanMath},
	{rawTeXPattern, SpanRawTeX},
	{htmlCommentPattern, SpanComment},
}

// Protect hides code, math, raw LaTeX, and HTML comment spans behind
// placeholder tokens. It is pure with respect to external state: all effects
// live in the returned Store.
func Protect(text string) (string, *Store) {
	store := &Store{}
	for _, pass := range protectionPasses {
		text = store.hide(text, pass.pattern, pass.category)
	}
	return text, store
}

// hide replaces every non-overlapping, leftmost-first match with a fresh
// placeholder.
func (s *Store) hide(text string, pattern *regexp.Regexp, category SpanCategory) string {
	return pattern.ReplaceAllStringFunc(text, func(match string) string {
		return s.Add(match, category)
	})
}

// Add records a span and returns its placeholder token.
func (s *Store) Add(original string, category SpanCategory) string {
	placeholder := fmt.Sprintf("%s%d%s", spanStart, len(s.spans), spanEnd)
	s.spans = append(s.spans, ProtectedSpan{
		Placeholder: placeholder,
		Original:    original,
		Category:    category,
	})
	return placeholder
}

// Restore substitutes every placeholder back with its original text, in
// reverse protection order. Placeholders with no matching span are left
// as-is so a bug here degrades gracefully instead of destroying the
// document.
func (s *Store) Restore(text string) string {
	for i := len(s.spans) - 1; i >= 0; i-- {
		text = strings.ReplaceAll(text, s.spans[i].Placeholder, s.spans[i].Original)
	}
	return text
}

// Render rewrites the stored text of every span in the given category. The
// element converters use this to finish spans they own (inline code to
// \texttt, HTML comments to % comments) without ever exposing the content to
// the other converters.
func (s *Store) Render(category SpanCategory, fn func(original string) string) {
	for i := range s.spans {
		if s.spans[i].Category == category {
			s.spans[i].Original = fn(s.spans[i].Original)
		}
	}
}

// spanFor returns the span owning a placeholder token.
func (s *Store) spanFor(placeholder string) (ProtectedSpan, bool) {
	for _, span := range s.spans {
		if span.Placeholder == placeholder {
			return span, true
		}
	}
	return ProtectedSpan{}, false
}

// Spans returns the protected spans in protection order.
func (s *Store) Spans() []ProtectedSpan {
	return s.spans
}

// Len returns the number of protected spans.
func (s *Store) Len() int {
	return len(s.spans)
}

// HasPlaceholder reports whether text still carries any placeholder token.
// The orchestrator checks this after RESTORE; a leftover placeholder is a
// programming invariant violation, not a manuscript error.
func HasPlaceholder(text string) bool {
	return strings.Contains(text, spanStart) || strings.Contains(text, spanEnd)
}
