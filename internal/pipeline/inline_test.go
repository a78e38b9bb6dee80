package pipeline

import "testing"

func TestConvertBoldItalic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bold",
			text: "**bold**",
			want: `\textbf{bold}`,
		},
		{
			name: "italic",
			text: "*italic*",
			want: `\textit{italic}`,
		},
		{
			name: "bold and italic side by side",
			text: "**bold** and *italic*",
			want: `\textbf{bold} and \textit{italic}`,
		},
		{
			name: "italic nested in bold",
			text: "**bold *and italic***",
			want: `\textbf{bold \textit{and italic}}`,
		},
		{
			name: "two bold runs",
			text: "**a** plus **b**",
			want: `\textbf{a} plus \textbf{b}`,
		},
		{
			name: "stray asterisk untouched",
			text: "a * b",
			want: "a * b",
		},
		{
			name: "unclosed bold untouched",
			text: "**dangling",
			want: "**dangling",
		},
		{
			name: "italic not spanning whitespace edges",
			text: "* not italic *",
			want: "* not italic *",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertBoldItalic(tt.text); got != tt.want {
				t.Errorf("convertBoldItalic(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestConvertInlineFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "subscript",
			text: "H~2~O",
			want: `H\textsubscript{2}O`,
		},
		{
			name: "superscript",
			text: "x^2^",
			want: `x\textsuperscript{2}`,
		},
		{
			name: "mixed emphasis and scripts",
			text: "**CO~2~**",
			want: `\textbf{CO\textsubscript{2}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext()
			if got := convertInlineFormatting(tt.text, ctx); got != tt.want {
				t.Errorf("convertInlineFormatting(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestRenderInlineCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		span string
		want string
	}{
		{
			name: "plain code",
			span: "`ls -la`",
			want: `\texttt{ls -la}`,
		},
		{
			name: "special characters escaped",
			span: "`a_b & $c`",
			want: `\texttt{a\_b \& \$c}`,
		},
		{
			name: "double backtick span",
			span: "``a ``",
			want: `\texttt{a }`,
		},
		{
			name: "lstlisting passes through",
			span: "\\begin{lstlisting}\nx\n\\end{lstlisting}",
			want: "\\begin{lstlisting}\nx\n\\end{lstlisting}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderInlineCode(tt.span); got != tt.want {
				t.Errorf("renderInlineCode(%q) = %q, want %q", tt.span, got, tt.want)
			}
		})
	}
}
