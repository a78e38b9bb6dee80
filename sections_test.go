package md2tex

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestExtractSections(t *testing.T) {
	t.Parallel()

	md := `## Abstract

A short summary.

## Results and Discussion

Findings here.

## Methods

Protocol details.

## Data availability

Zenodo deposit.
`

	sections := ExtractSections(md)
	want := []struct {
		key   string
		title string
	}{
		{"abstract", "Abstract"},
		{"main", "Results and Discussion"},
		{"methods", "Methods"},
		{"data_availability", "Data availability"},
	}

	if len(sections) != len(want) {
		t.Fatalf("got %d sections, want %d: %+v", len(sections), len(want), sections)
	}
	for i, w := range want {
		if sections[i].Key != w.key {
			t.Errorf("section[%d].Key = %q, want %q", i, sections[i].Key, w.key)
		}
		if sections[i].Title != w.title {
			t.Errorf("section[%d].Title = %q, want %q", i, sections[i].Title, w.title)
		}
		if sections[i].Body == "" {
			t.Errorf("section[%d].Body is empty", i)
		}
	}
}

func TestExtractSectionsNoHeadings(t *testing.T) {
	t.Parallel()

	sections := ExtractSections("just a paragraph\n")
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Key != "main" || sections[0].Body != "just a paragraph" {
		t.Errorf("section = %+v", sections[0])
	}
}

func TestExtractSectionsLeadingContent(t *testing.T) {
	t.Parallel()

	sections := ExtractSections("intro text\n\n## Methods\n\nbody\n")
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2: %+v", len(sections), sections)
	}
	if sections[0].Key != "main" || sections[0].Body != "intro text" {
		t.Errorf("lead section = %+v", sections[0])
	}
	if sections[1].Key != "methods" || sections[1].Body != "body" {
		t.Errorf("methods section = %+v", sections[1])
	}
}

func TestConvertSections(t *testing.T) {
	t.Parallel()

	md := strings.Join([]string{
		"## Abstract",
		"",
		"A **short** summary.",
		"",
		"## Methods",
		"",
		"Protocol with `tool_x` steps.",
	}, "\n")

	conv := NewConverter()
	sections, err := conv.ConvertSections(context.Background(), Input{Markdown: md})
	if err != nil {
		t.Fatalf("ConvertSections failed: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2: %+v", len(sections), sections)
	}

	abstract := sections[0]
	if abstract.Key != "abstract" || abstract.Title != "Abstract" {
		t.Errorf("first section = %+v", abstract)
	}
	if !strings.Contains(abstract.LaTeX, `\textbf{short}`) {
		t.Errorf("abstract not converted: %q", abstract.LaTeX)
	}
	if strings.Contains(abstract.LaTeX, `\section`) {
		t.Errorf("section heading leaked into fragment: %q", abstract.LaTeX)
	}

	methods := sections[1]
	if methods.Key != "methods" {
		t.Errorf("second section key = %q, want methods", methods.Key)
	}
	if !strings.Contains(methods.LaTeX, `\texttt{tool\_x}`) {
		t.Errorf("methods not converted: %q", methods.LaTeX)
	}
}

func TestConvertSectionsEmpty(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	if _, err := conv.ConvertSections(context.Background(), Input{}); !errors.Is(err, ErrEmptyMarkdown) {
		t.Errorf("err = %v, want ErrEmptyMarkdown", err)
	}
}

func TestSectionKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"Abstract", "abstract"},
		{"Introduction", "main"},
		{"Results", "main"},
		{"Methods and Materials", "methods"},
		{"Data Availability", "data_availability"},
		{"Code Availability", "code_availability"},
		{"Author Contributions", "author_contributions"},
		{"Acknowledgements", "acknowledgements"},
		{"Supplementary Notes", "supplementary_notes"},
		{"My-Custom Section", "my_custom_section"},
	}

	for _, tt := range tests {
		if got := sectionKey(tt.title); got != tt.want {
			t.Errorf("sectionKey(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
