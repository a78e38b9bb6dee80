package pipeline

import (
	"regexp"
	"strings"
)

var (
	unorderedItemPattern = regexp.MustCompile(`^(\s*)- (.*)$`)
	orderedItemPattern   = regexp.MustCompile(`^(\s*)\d+\. (.*)$`)
)

// convertLists turns contiguous runs of Markdown list lines into itemize and
// enumerate environments. A blank line or a non-list line ends the run;
// deeper-indented items recurse into a nested environment.
func convertLists(text string, ctx *Context) string {
	lines := strings.Split(text, "\n")
	var out []string
	i := 0
	for i < len(lines) {
		if !isListItem(lines[i]) {
			out = append(out, lines[i])
			i++
			continue
		}
		j := i
		for j < len(lines) && isListItem(lines[j]) {
			j++
		}
		out = append(out, renderList(lines[i:j])...)
		i = j
	}
	return strings.Join(out, "\n")
}

func isListItem(line string) bool {
	return unorderedItemPattern.MatchString(line) || orderedItemPattern.MatchString(line)
}

// renderList renders one run of list lines. The first line fixes the base
// indentation and environment; deeper lines are captured and rendered
// recursively, and an item-type change at the base level closes the current
// environment and opens the other one.
func renderList(lines []string) []string {
	baseIndent := itemIndent(lines[0])
	env := environmentFor(lines[0])

	out := []string{`\begin{` + env + `}`}
	i := 0
	for i < len(lines) {
		if itemIndent(lines[i]) > baseIndent {
			j := i
			for j < len(lines) && itemIndent(lines[j]) > baseIndent {
				j++
			}
			out = append(out, renderList(lines[i:j])...)
			i = j
			continue
		}
		if next := environmentFor(lines[i]); next != env {
			out = append(out, `\end{`+env+`}`, `\begin{`+next+`}`)
			env = next
		}
		out = append(out, `\item `+itemText(lines[i]))
		i++
	}
	out = append(out, `\end{`+env+`}`)
	return out
}

func environmentFor(line string) string {
	if orderedItemPattern.MatchString(line) {
		return "enumerate"
	}
	return "itemize"
}

func itemIndent(line string) int {
	if m := unorderedItemPattern.FindStringSubmatch(line); m != nil {
		return len(m[1])
	}
	if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
		return len(m[1])
	}
	return 0
}

func itemText(line string) string {
	if m := unorderedItemPattern.FindStringSubmatch(line); m != nil {
		return m[2]
	}
	if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
		return m[2]
	}
	return strings.TrimSpace(line)
}
