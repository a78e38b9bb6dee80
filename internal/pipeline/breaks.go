package pipeline

import "strings"

var pageBreakReplacer = strings.NewReplacer(
	"<newpage>", `\newpage`,
	"<clearpage>", `\clearpage`,
)

// convertPageBreaks maps the literal page-break markers to LaTeX commands.
func convertPageBreaks(text string, ctx *Context) string {
	return pageBreakReplacer.Replace(text)
}

// convertComments renders the protected HTML comment spans as LaTeX
// comments, one % per line. The spans were hidden at PROTECT time, so
// nothing inside a comment was touched by the other converters.
func convertComments(text string, ctx *Context) string {
	if ctx.Store != nil {
		ctx.Store.Render(SpanComment, renderComment)
	}
	return text
}

func renderComment(original string) string {
	body := strings.TrimPrefix(original, "<!--")
	body = strings.TrimSuffix(body, "-->")
	body = strings.TrimSpace(body)

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = "% " + strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
