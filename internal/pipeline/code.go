package pipeline

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

var (
	// Fenced code block with optional language tag.
	fencedCodePattern = regexp.MustCompile("(?s)```([a-zA-Z0-9_+-]*)[ \t]*\n(.*?)\n?```")

	// Display math with a trailing {#eq:key} attribute block.
	attributedMathPattern = regexp.MustCompile(`(?s)\$\$(.+?)\$\$\s*\{#eq:([a-zA-Z0-9_-]+)\}`)
)

// convertCodeBlocks turns fenced code blocks into lstlisting environments.
// This runs before Protect so the emitted environments are hidden from every
// element converter; content inside a fence is never escaped or rescanned.
//
// An opening fence with no closing fence extends to the end of the document:
// the block is still converted, the rest of the document is preserved, and a
// warning is recorded.
func convertCodeBlocks(text string, ctx *Context) string {
	text = fencedCodePattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := fencedCodePattern.FindStringSubmatch(match)
		return codeEnvironment(groups[1], groups[2])
	})

	// Unterminated fence: everything after it is code.
	if i := strings.Index(text, "```"); i >= 0 {
		ctx.Warnings.AddfAt(lineAt(text, i), CategoryProtect, "unterminated code fence")
		rest := text[i:]
		lang := ""
		body := ""
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			lang = strings.TrimSpace(rest[3:nl])
			body = rest[nl+1:]
		}
		text = text[:i] + codeEnvironment(lang, body)
	}

	return text
}

// codeEnvironment emits a lstlisting environment for one fenced block. The
// language tag is canonicalized against the chroma lexer registry; unknown
// tags degrade to a plain listing.
func codeEnvironment(lang, body string) string {
	opts := ""
	if name := canonicalLanguage(lang); name != "" {
		opts = "[language=" + name + "]"
	}
	return "\\begin{lstlisting}" + opts + "\n" + body + "\n\\end{lstlisting}"
}

// canonicalLanguage resolves a fence language tag (including aliases like
// "py" or "sh") to the lexer's canonical name, or "" if unknown.
func canonicalLanguage(tag string) string {
	if tag == "" {
		return ""
	}
	lexer := lexers.Get(tag)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}

// convertAttributedMath turns $$...$${#eq:key} into a numbered equation
// environment and declares the label. Unattributed display math is left for
// the Protector to hide as-is.
func convertAttributedMath(text string, ctx *Context) string {
	return attributedMathPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := attributedMathPattern.FindStringSubmatch(match)
		body := strings.TrimSpace(groups[1])
		label := ctx.Labels.Declare(NamespaceEquation, groups[2])
		return "\\begin{equation}\n" + body + "\n\\label{" + label + "}\n\\end{equation}"
	})
}
