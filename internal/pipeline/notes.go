package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	suppNotesHeading = `\subsection{Supplementary Notes}`

	noteHeadingPattern = regexp.MustCompile(`(?m)^\\subsubsection\{([^}]+)\}$`)

	noteSlugStrip    = regexp.MustCompile(`[^\w\s-]`)
	noteSlugCollapse = regexp.MustCompile(`[-\s]+`)
)

// convertSupplementaryNotes numbers the note headings of a supplementary
// document. Every \subsubsection after the "Supplementary Notes" heading
// becomes "Supplementary Note N: Title" with an auto-generated snote: label
// derived from the title, so the main text can reference notes with
// @snote:key. Documents without a Supplementary Notes section pass through
// unchanged.
func convertSupplementaryNotes(text string, ctx *Context) string {
	if !ctx.Supplementary {
		return text
	}

	i := strings.Index(text, suppNotesHeading)
	if i < 0 {
		return text
	}
	before := text[:i+len(suppNotesHeading)]
	notes := text[i+len(suppNotesHeading):]

	counter := 0
	notes = noteHeadingPattern.ReplaceAllStringFunc(notes, func(match string) string {
		title := noteHeadingPattern.FindStringSubmatch(match)[1]
		counter++
		label := ctx.Labels.Declare(NamespaceSuppNote, noteSlug(title))
		return fmt.Sprintf(`\subsection{Supplementary Note %d: %s}\label{%s}`, counter, title, label)
	})

	return before + notes
}

// noteSlug derives a reference key from a note title.
func noteSlug(title string) string {
	slug := strings.ToLower(title)
	slug = noteSlugStrip.ReplaceAllString(slug, "")
	slug = noteSlugCollapse.ReplaceAllString(slug, "_")
	return strings.Trim(slug, "_")
}
