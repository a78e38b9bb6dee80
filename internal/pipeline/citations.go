package pipeline

import (
	"regexp"
	"strings"
)

var (
	// [@smith2020;@doe2021]
	bracketedCitePattern = regexp.MustCompile(`\[(@[^\]]+)\]`)

	// @key outside brackets. The leading character class rejects email
	// addresses and already-emitted LaTeX commands; a trailing :key marks a
	// cross-reference namespace, which this stage leaves alone.
	singleCitePattern = regexp.MustCompile(`(^|[^\w@\\{])@([a-zA-Z][a-zA-Z0-9_-]*)(:[a-zA-Z0-9_-]+)?`)
)

// convertCitations rewrites citation tokens to \cite commands. Bracketed
// lists convert first so their keys are not rematched as single citations.
// Namespace-prefixed tokens (@fig:..., @eq:...) pass through untouched for
// the cross-reference converter, bracketed or not.
func convertCitations(text string, ctx *Context) string {
	text = bracketedCitePattern.ReplaceAllStringFunc(text, func(match string) string {
		keys := citationKeys(bracketedCitePattern.FindStringSubmatch(match)[1])
		if len(keys) == 0 || hasNamespacedKey(keys) {
			return match
		}
		return `\cite{` + strings.Join(keys, ",") + `}`
	})

	text = singleCitePattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := singleCitePattern.FindStringSubmatch(match)
		prefix, key, suffix := groups[1], groups[2], groups[3]
		if suffix != "" && knownNamespaces[key] {
			return match
		}
		return prefix + `\cite{` + key + `}` + suffix
	})

	return text
}

// hasNamespacedKey reports whether any key in a bracketed group carries a
// cross-reference namespace prefix. Such groups belong to the cross-reference
// converter, which runs after this stage.
func hasNamespacedKey(keys []string) bool {
	for _, key := range keys {
		if namespace, _, ok := strings.Cut(key, ":"); ok && knownNamespaces[namespace] {
			return true
		}
	}
	return false
}

// citationKeys splits a bracketed citation list on semicolons, dropping the
// @ markers and empty entries.
func citationKeys(list string) []string {
	var keys []string
	for _, part := range strings.Split(list, ";") {
		key := strings.TrimPrefix(strings.TrimSpace(part), "@")
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
