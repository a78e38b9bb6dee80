package pipeline

import (
	"regexp"
	"strings"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	bareURLPattern      = regexp.MustCompile(`https?://[^\s<>{}\\]+`)
)

// convertLinks rewrites [text](url) to \href and bare URLs to \url. The
// link-with-text pass runs first so a URL already wrapped in \href is never
// wrapped again.
func convertLinks(text string, ctx *Context) string {
	text = markdownLinkPattern.ReplaceAllString(text, `\href{$2}{$1}`)

	var b strings.Builder
	last := 0
	for _, loc := range bareURLPattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		// Inside \href{...} or \url{...} the URL is brace-delimited.
		if start > 0 && text[start-1] == '{' {
			continue
		}
		url := strings.TrimRight(text[start:end], ".,;:!?)")
		end = start + len(url)
		b.WriteString(text[last:start])
		b.WriteString(`\url{` + url + `}`)
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}
