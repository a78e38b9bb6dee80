package pipeline

import "testing"

func TestConvertLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "markdown link",
			text: "see [the docs](https://example.org/docs) here",
			want: `see \href{https://example.org/docs}{the docs} here`,
		},
		{
			name: "bare url",
			text: "visit https://example.org today",
			want: `visit \url{https://example.org} today`,
		},
		{
			name: "bare url trailing punctuation excluded",
			text: "see https://example.org.",
			want: `see \url{https://example.org}.`,
		},
		{
			name: "url inside href not rewrapped",
			text: "[x](https://example.org)",
			want: `\href{https://example.org}{x}`,
		},
		{
			name: "link text matching url",
			text: "[https://example.org](https://example.org)",
			want: `\href{https://example.org}{https://example.org}`,
		},
		{
			name: "http scheme",
			text: "http://plain.example",
			want: `\url{http://plain.example}`,
		},
		{
			name: "relative link",
			text: "[readme](README.md)",
			want: `\href{README.md}{readme}`,
		},
		{
			name: "no links",
			text: "nothing to do",
			want: "nothing to do",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext()
			if got := convertLinks(tt.text, ctx); got != tt.want {
				t.Errorf("convertLinks(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
