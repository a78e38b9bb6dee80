package md2tex

import (
	"context"
	"regexp"
	"strings"
)

var sectionHeaderPattern = regexp.MustCompile(`(?m)^## (.+)$`)

// Section is one "## " slice of a manuscript, in document order.
type Section struct {
	Key   string // normalized key, e.g. "methods"
	Title string // heading text as written
	Body  string // Markdown between this heading and the next
}

// ExtractSections splits a manuscript body on its "## " headings so each
// section can be placed independently into a document template. Content
// before the first heading (or a manuscript without headings) becomes the
// "main" section.
func ExtractSections(markdown string) []Section {
	matches := sectionHeaderPattern.FindAllStringSubmatchIndex(markdown, -1)
	if len(matches) == 0 {
		return []Section{{Key: "main", Title: "", Body: strings.TrimSpace(markdown)}}
	}

	var sections []Section
	if lead := strings.TrimSpace(markdown[:matches[0][0]]); lead != "" {
		sections = append(sections, Section{Key: "main", Title: "", Body: lead})
	}
	for i, m := range matches {
		title := strings.TrimSpace(markdown[m[2]:m[3]])
		end := len(markdown)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections = append(sections, Section{
			Key:   sectionKey(title),
			Title: title,
			Body:  strings.TrimSpace(markdown[m[1]:end]),
		})
	}
	return sections
}

// SectionLaTeX is one independently converted manuscript section, keyed for
// placement into a document template.
type SectionLaTeX struct {
	Key   string
	Title string
	LaTeX string
}

// ConvertSections splits a manuscript on its "## " headings and converts each
// section body on its own, so a template can place sections individually.
// Bodies convert without their headings; the template supplies those. Each
// section runs through a fresh pipeline, so warnings are not collected here:
// Convert the full document to collect them once.
func (c *Converter) ConvertSections(ctx context.Context, input Input) ([]SectionLaTeX, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	var out []SectionLaTeX
	for _, s := range ExtractSections(normalizeLineEndings(input.Markdown)) {
		latex := ""
		if s.Body != "" {
			result, err := c.Convert(ctx, Input{Markdown: s.Body, Supplementary: input.Supplementary})
			if err != nil {
				return nil, err
			}
			latex = result.LaTeX
		}
		out = append(out, SectionLaTeX{Key: s.Key, Title: s.Title, LaTeX: latex})
	}
	return out, nil
}

// sectionKey maps a heading to a standardized template key by fuzzy title
// match, falling back to a slug of the title.
func sectionKey(title string) string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "abstract"):
		return "abstract"
	case strings.Contains(lower, "main"),
		strings.Contains(lower, "introduction"),
		strings.Contains(lower, "result"):
		return "main"
	case strings.Contains(lower, "method"):
		return "methods"
	case strings.Contains(lower, "data availability"),
		strings.Contains(lower, "data access"):
		return "data_availability"
	case strings.Contains(lower, "code availability"),
		strings.Contains(lower, "code access"):
		return "code_availability"
	case strings.Contains(lower, "contribution"):
		return "author_contributions"
	case strings.Contains(lower, "acknowledge"):
		return "acknowledgements"
	default:
		key := strings.ReplaceAll(lower, " ", "_")
		return strings.ReplaceAll(key, "-", "_")
	}
}
