package pipeline

import "strings"

// latexSpecialReplacer escapes every LaTeX-significant character. Backslash
// first, then braces, so replacement text is never re-escaped.
var latexSpecialReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`~`, `\textasciitilde{}`,
	`_`, `\_`,
)

// textSpecialReplacer escapes the characters that break LaTeX text mode but
// leaves backslash and braces alone, for content that may already carry
// emitted LaTeX commands.
var textSpecialReplacer = strings.NewReplacer(
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`~`, `\textasciitilde{}`,
	`_`, `\_`,
)

// EscapeLatex escapes all LaTeX special characters in text. Used for code
// span content rendered into \texttt{} and for metadata fields, which must
// be treated as opaque user text.
func EscapeLatex(text string) string {
	return latexSpecialReplacer.Replace(text)
}

// escapeOutsideTexttt escapes text-mode special characters, skipping
// already-emitted \texttt{} blocks so their escaped content is not escaped
// twice.
func escapeOutsideTexttt(text string) string {
	return mapOutsideTexttt(text, textSpecialReplacer.Replace)
}

// mapOutsideTexttt applies fn to every part of text not inside a \texttt{}
// block.
func mapOutsideTexttt(text string, fn func(string) string) string {
	var b strings.Builder
	for {
		i := strings.Index(text, `\texttt{`)
		if i < 0 {
			b.WriteString(fn(text))
			break
		}
		end := textttEnd(text[i:])
		if end < 0 {
			b.WriteString(fn(text))
			break
		}
		b.WriteString(fn(text[:i]))
		b.WriteString(text[i : i+end+1])
		text = text[i+end+1:]
	}
	return b.String()
}

// textttEnd returns the index of the closing brace of the \texttt{ block that
// starts s, or -1 when the block is unterminated. Backslash-escaped braces
// inside the block do not open or close it.
func textttEnd(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
