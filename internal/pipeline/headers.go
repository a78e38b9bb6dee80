package pipeline

import (
	"regexp"
	"strings"
)

var (
	headerPattern = regexp.MustCompile(`(?m)^(#{1,3}) (.+)$`)

	// Trailing {#sec:key} attribute on a header line.
	headerLabelPattern = regexp.MustCompile(`\s*\{#(?:([a-z]+):)?([a-zA-Z0-9_-]+)\}\s*$`)
)

var headerCommands = map[int]string{
	1: `\section`,
	2: `\subsection`,
	3: `\subsubsection`,
}

// convertHeaders maps ATX headers at line start to LaTeX sectioning
// commands. A trailing {#label} attribute is captured into the label
// registry and emitted as a \label command after the heading; the heading
// text itself is unchanged.
func convertHeaders(text string, ctx *Context) string {
	return headerPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := headerPattern.FindStringSubmatch(match)
		level := len(groups[1])
		title := strings.TrimSpace(groups[2])

		label := ""
		if attr := headerLabelPattern.FindStringSubmatch(title); attr != nil {
			namespace := attr[1]
			if namespace == "" {
				namespace = NamespaceSection
			}
			label = ctx.Labels.Declare(namespace, attr[2])
			title = headerLabelPattern.ReplaceAllString(title, "")
		}

		out := headerCommands[level] + "{" + title + "}"
		if label != "" {
			out += `\label{` + label + `}`
		}
		return out
	})
}
