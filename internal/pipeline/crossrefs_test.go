package pipeline

import "testing"

func TestConvertCrossReferences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		declare  [][2]string
		want     string
		wantWarn int
	}{
		{
			name:    "declared figure reference",
			text:    "see @fig:cat here",
			declare: [][2]string{{NamespaceFigure, "cat"}},
			want:    `see \ref{fig:cat} here`,
		},
		{
			name:    "equation uses eqref",
			text:    "from @eq:einstein we get",
			declare: [][2]string{{NamespaceEquation, "einstein"}},
			want:    `from \eqref{eq:einstein} we get`,
		},
		{
			name:    "braced note reference",
			text:    "details in {@snote:extra}",
			declare: [][2]string{{NamespaceSuppNote, "extra"}},
			want:    `details in \ref{snote:extra}`,
		},
		{
			name:     "undeclared reference still emits ref",
			text:     "see @fig:ghost",
			want:     `see \ref{fig:ghost}`,
			wantWarn: 1,
		},
		{
			name:     "repeated undeclared reference warns once",
			text:     "@fig:ghost and again @fig:ghost",
			want:     `\ref{fig:ghost} and again \ref{fig:ghost}`,
			wantWarn: 1,
		},
		{
			name:     "two distinct undeclared references warn twice",
			text:     "@fig:a then @table:b",
			want:     `\ref{fig:a} then \ref{table:b}`,
			wantWarn: 2,
		},
		{
			name: "supplementary namespaces",
			text: "@sfig:s and @stable:t",
			declare: [][2]string{
				{NamespaceSuppFigure, "s"},
				{NamespaceSuppTable, "t"},
			},
			want: `\ref{sfig:s} and \ref{stable:t}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext()
			for _, d := range tt.declare {
				ctx.Labels.Declare(d[0], d[1])
			}

			if got := convertCrossReferences(tt.text, ctx); got != tt.want {
				t.Errorf("convertCrossReferences(%q) = %q, want %q", tt.text, got, tt.want)
			}
			if ctx.Warnings.Len() != tt.wantWarn {
				t.Errorf("warnings = %d, want %d: %v",
					ctx.Warnings.Len(), tt.wantWarn, ctx.Warnings.All())
			}
		})
	}
}

func TestUnresolvedReferenceWarningHasFix(t *testing.T) {
	t.Parallel()

	ctx := NewContext()
	convertCrossReferences("@fig:ghost", ctx)

	if ctx.Warnings.Len() != 1 {
		t.Fatalf("warnings = %d, want 1", ctx.Warnings.Len())
	}
	w := ctx.Warnings.All()[0]
	if w.Category != CategoryReference {
		t.Errorf("category = %q, want %q", w.Category, CategoryReference)
	}
	if w.Fix == "" {
		t.Error("unresolved reference warning carries no fix hint")
	}
}
