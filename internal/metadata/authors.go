package metadata

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2tex/internal/pipeline"
)

// AuthorsAndAffiliationsBlock renders the \author and \affil commands.
// Affiliations are numbered in order of first appearance across the author
// list; equal contributors get a * marker and corresponding authors a
// \Letter marker.
func (c *Config) AuthorsAndAffiliationsBlock() string {
	if len(c.Authors) == 0 {
		return "\\author[1]{Author Name}\n\\affil[1]{Institution}"
	}

	affilNumbers := map[string]int{}
	var usedAffils []string
	for _, author := range c.Authors {
		for _, short := range author.Affiliations {
			if _, seen := affilNumbers[short]; !seen {
				affilNumbers[short] = len(usedAffils) + 1
				usedAffils = append(usedAffils, short)
			}
		}
	}

	var authors, affils []string
	hasEqualContributors := false

	for _, author := range c.Authors {
		var nums []string
		for _, short := range author.Affiliations {
			nums = append(nums, fmt.Sprintf("%d", affilNumbers[short]))
		}
		if len(nums) == 0 {
			nums = []string{"1"}
		}
		if author.CoFirst {
			hasEqualContributors = true
			nums = append(nums, "*")
		}
		if author.Corresponding {
			nums = append(nums, `\Letter`)
		}
		authors = append(authors,
			fmt.Sprintf(`\author[%s]{%s}`, strings.Join(nums, ","), pipeline.EscapeLatex(author.Name)))
	}

	for i, short := range usedAffils {
		affils = append(affils, fmt.Sprintf(`\affil[%d]{%s}`, i+1, pipeline.EscapeLatex(c.affiliationText(short))))
	}
	if hasEqualContributors {
		affils = append(affils, `\affil[*]{Equally contributed authors}`)
	}

	return strings.Join(authors, "\n") + "\n" + strings.Join(affils, "\n")
}

// affiliationText resolves a shortname to "Full Name, Location", falling
// back to the shortname when the affiliation list has no entry.
func (c *Config) affiliationText(short string) string {
	for _, a := range c.Affiliations {
		if a.Shortname != short {
			continue
		}
		if a.Location != "" {
			return a.FullName + ", " + a.Location
		}
		if a.FullName != "" {
			return a.FullName
		}
	}
	return short
}

// CorrespondingAuthorsBlock renders the correspondence line with abbreviated
// names and obfuscated email addresses.
func (c *Config) CorrespondingAuthorsBlock() string {
	var entries []string
	for _, author := range c.Authors {
		if !author.Corresponding {
			continue
		}
		entry := abbreviateName(author.Name)
		if author.Email != "" {
			email := strings.ReplaceAll(pipeline.EscapeLatex(author.Email), "@", `\at `)
			entry += fmt.Sprintf(` (\texttt{%s})`, email)
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return "% No corresponding authors"
	}
	return `\textbf{Correspondence}: ` + strings.Join(entries, "; ")
}

// KeywordsBlock renders the \keywords command, or "" when no keywords are
// declared.
func (c *Config) KeywordsBlock() string {
	if len(c.Keywords) == 0 {
		return ""
	}
	escaped := make([]string, len(c.Keywords))
	for i, kw := range c.Keywords {
		escaped[i] = pipeline.EscapeLatex(kw)
	}
	return `\keywords{` + strings.Join(escaped, ", ") + `}`
}

// TitleBlock renders the \title command.
func (c *Config) TitleBlock() string {
	return `\title{` + pipeline.EscapeLatex(c.Title) + `}`
}

// DateBlock renders the \date command, or "" when no date is declared.
func (c *Config) DateBlock() string {
	if c.Date == "" {
		return ""
	}
	return `\date{` + pipeline.EscapeLatex(c.Date) + `}`
}

// abbreviateName shortens "Ada Byron Lovelace" to "A. B. Lovelace".
func abbreviateName(name string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return name
	}
	var initials []string
	for _, part := range parts[:len(parts)-1] {
		initials = append(initials, strings.ToUpper(string([]rune(part)[0]))+".")
	}
	return strings.Join(initials, " ") + " " + parts[len(parts)-1]
}
