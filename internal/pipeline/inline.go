package pipeline

import (
	"regexp"
	"strings"
)

var (
	// Single-asterisk emphasis; the inner text may not start or end with
	// whitespace. Double asterisks are consumed by the bold scanner first,
	// so no lookaround is needed here.
	italicPattern = regexp.MustCompile(`\*([^*\s](?:[^*]*[^*\s])?)\*`)

	subscriptPattern   = regexp.MustCompile(`~([^~\s]+)~`)
	superscriptPattern = regexp.MustCompile(`\^([^^\s]+)\^`)

	backtickSpanTrim = regexp.MustCompile("^`+|`+$")
)

// convertInlineFormatting applies bold, italic, subscript, and superscript
// conversion, and renders the protected inline code spans to \texttt. Code
// and math were hidden before this stage, so an asterisk inside a code span
// can never trigger emphasis.
func convertInlineFormatting(text string, ctx *Context) string {
	if ctx.Store != nil {
		ctx.Store.Render(SpanCode, renderInlineCode)
	}

	text = convertBoldItalic(text)
	text = subscriptPattern.ReplaceAllString(text, `\textsubscript{$1}`)
	text = superscriptPattern.ReplaceAllString(text, `\textsuperscript{$1}`)
	return text
}

// renderInlineCode turns a raw backtick span into \texttt with full LaTeX
// escaping. Fenced blocks were already rendered as lstlisting environments
// and pass through untouched.
func renderInlineCode(original string) string {
	if !strings.HasPrefix(original, "`") {
		return original
	}
	content := backtickSpanTrim.ReplaceAllString(original, "")
	return `\texttt{` + EscapeLatex(content) + `}`
}

// convertBoldItalic converts **bold** and *italic*, resolving ambiguous
// nesting leftmost-outermost: bold wins, and the captured inner text gets a
// recursive italic pass, so **bold *and italic*** nests correctly.
func convertBoldItalic(text string) string {
	var b strings.Builder
	for {
		i := strings.Index(text, "**")
		if i < 0 {
			break
		}
		j := strings.Index(text[i+2:], "**")
		if j < 0 {
			break
		}
		j += i + 2
		// A three-asterisk run closes the inner italic before the bold.
		if j+2 < len(text) && text[j+2] == '*' {
			j++
		}
		b.WriteString(convertItalic(text[:i]))
		b.WriteString(`\textbf{` + convertItalic(text[i+2:j]) + `}`)
		text = text[j+2:]
	}
	b.WriteString(convertItalic(text))
	return b.String()
}

func convertItalic(text string) string {
	return italicPattern.ReplaceAllString(text, `\textit{$1}`)
}
