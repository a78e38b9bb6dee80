package pipeline

import "regexp"

var (
	// {@snote:key}: the braced reference form used for supplementary notes.
	bracedRefPattern = regexp.MustCompile(`\{@(fig|sfig|table|stable|eq|snote|sec):([a-zA-Z0-9_-]+)\}`)

	// @fig:key and friends.
	bareRefPattern = regexp.MustCompile(`@(fig|sfig|table|stable|eq|snote|sec):([a-zA-Z0-9_-]+)`)
)

// convertCrossReferences rewrites @namespace:key tokens to LaTeX reference
// commands. Resolution against the label registry is best-effort: an
// undeclared label still emits the reference command (LaTeX reports the
// dangling reference at compile time) and records one warning per key.
func convertCrossReferences(text string, ctx *Context) string {
	unresolved := map[string]bool{}

	replace := func(pattern *regexp.Regexp) func(string) string {
		return func(match string) string {
			groups := pattern.FindStringSubmatch(match)
			namespace, key := groups[1], groups[2]

			resolved, ok := ctx.Labels.Resolve(namespace, key)
			if !ok && !unresolved[resolved] {
				unresolved[resolved] = true
				ctx.Warnings.Add(Warning{
					Category: CategoryReference,
					Severity: SeverityRecoverable,
					Message:  "reference to undeclared label " + resolved,
					Fix:      "declare {#" + resolved + "} on the target figure, table, or note",
				})
			}

			command := `\ref`
			if namespace == NamespaceEquation {
				command = `\eqref`
			}
			return command + `{` + resolved + `}`
		}
	}

	text = bracedRefPattern.ReplaceAllStringFunc(text, replace(bracedRefPattern))
	text = bareRefPattern.ReplaceAllStringFunc(text, replace(bareRefPattern))
	return text
}
