package pipeline

import (
	"strings"
	"testing"
)

func TestConvertFigures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		text          string
		supplementary bool
		wantContains  []string
		wantExcludes  []string
	}{
		{
			name: "attributed figure",
			text: "![A cat](FIGURES/cat.svg){#fig:cat}",
			wantContains: []string{
				`\begin{figure}[ht]`,
				`\centering`,
				`\includegraphics[width=\linewidth]{Figures/cat.png}`,
				`\caption{A cat}`,
				`\label{fig:cat}`,
				`\end{figure}`,
			},
		},
		{
			name: "simple figure has no label",
			text: "![A dog](dog.png)",
			wantContains: []string{
				`\includegraphics[width=\linewidth]{dog.png}`,
				`\caption{A dog}`,
			},
			wantExcludes: []string{`\label`},
		},
		{
			name: "new format with caption on attribute line",
			text: "![](FIGURES/flow.mmd)\n{#fig:flow width=80%} **Workflow** overview",
			wantContains: []string{
				`\includegraphics[width=0.8\linewidth]{Figures/flow/flow.png}`,
				`\caption{\textbf{Workflow} overview}`,
				`\label{fig:flow}`,
			},
		},
		{
			name: "new format with a blank line before the attribute line",
			text: "![](FIGURES/cat.png)\n\n{#fig:cat} **A cat**\n\nBody text.",
			wantContains: []string{
				`\includegraphics[width=\linewidth]{Figures/cat.png}`,
				`\caption{\textbf{A cat}}`,
				`\label{fig:cat}`,
				"Body text.",
			},
			wantExcludes: []string{`{#fig:cat}`},
		},
		{
			name: "new format caption runs to the end of the paragraph",
			text: "![](FIGURES/map.png)\n{#fig:map} **A map** of the region,\nsurveyed in spring.\n\nNext paragraph.",
			wantContains: []string{
				`\caption{\textbf{A map} of the region, surveyed in spring.}`,
				`\label{fig:map}`,
				"Next paragraph.",
			},
		},
		{
			name: "position and rotation options",
			text: `![Wide](w.png){#fig:wide tex_position="p" rotate=90}`,
			wantContains: []string{
				`\begin{figure}[p]`,
				`\rotatebox{90}{\includegraphics[width=\linewidth]{w.png}}`,
			},
		},
		{
			name: "explicit latex width passes through",
			text: `![X](x.png){#fig:x width=\textwidth}`,
			wantContains: []string{
				`\includegraphics[width=\textwidth]{x.png}`,
			},
		},
		{
			name:          "supplementary figure gets a page break",
			text:          "![S](s.png){#sfig:s}",
			supplementary: true,
			wantContains: []string{
				`\label{sfig:s}`,
				"\\end{figure}\n\\newpage",
			},
		},
		{
			name: "python script source resolves to generated png",
			text: "![Plot](FIGURES/analysis.py){#fig:plot}",
			wantContains: []string{
				`{Figures/analysis/analysis.png}`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext()
			ctx.Supplementary = tt.supplementary
			got := convertFigures(tt.text, ctx)

			for _, s := range tt.wantContains {
				if !strings.Contains(got, s) {
					t.Errorf("output missing %q:\n%s", s, got)
				}
			}
			for _, s := range tt.wantExcludes {
				if strings.Contains(got, s) {
					t.Errorf("output should not contain %q:\n%s", s, got)
				}
			}
		})
	}
}

func TestConvertFiguresWarnings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		text         string
		wantCategory string
		wantSeverity string
	}{
		{
			name:         "wrong namespace",
			text:         "![C](c.png){#table:oops}",
			wantCategory: CategoryFigure,
			wantSeverity: SeverityRecoverable,
		},
		{
			name:         "missing caption is advisory",
			text:         "![](bare.png){#fig:bare}",
			wantCategory: CategoryStyle,
			wantSeverity: SeverityAdvisory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext()
			convertFigures(tt.text, ctx)

			if ctx.Warnings.Len() != 1 {
				t.Fatalf("warnings = %d, want 1: %v", ctx.Warnings.Len(), ctx.Warnings.All())
			}
			w := ctx.Warnings.All()[0]
			if w.Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", w.Category, tt.wantCategory)
			}
			if w.Severity != tt.wantSeverity {
				t.Errorf("severity = %q, want %q", w.Severity, tt.wantSeverity)
			}
		})
	}
}

func TestResolveFigurePath(t *testing.T) {
	t.Parallel()

	ctx := NewContext()
	ctx.FigureDir = "Figures"

	tests := []struct {
		src  string
		want string
	}{
		{"FIGURES/x.png", "Figures/x.png"},
		{"FIGURES/x.svg", "Figures/x.png"},
		{"FIGURES/d.mmd", "Figures/d/d.png"},
		{"FIGURES/p.py", "Figures/p/p.png"},
		{"local.jpg", "local.jpg"},
		{"sub/dir/v.svg", "sub/dir/v.png"},
	}

	for _, tt := range tests {
		if got := resolveFigurePath(tt.src, ctx); got != tt.want {
			t.Errorf("resolveFigurePath(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestFigureWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width string
		want  string
	}{
		{"", `\linewidth`},
		{"80%", `0.8\linewidth`},
		{"85%", `0.85\linewidth`},
		{"100%", `1.0\linewidth`},
		{"5%", `0.05\linewidth`},
		{"0.6", `0.6\linewidth`},
		{`\textwidth`, `\textwidth`},
		{"bad%", `\linewidth`},
	}

	for _, tt := range tests {
		if got := figureWidth(tt.width); got != tt.want {
			t.Errorf("figureWidth(%q) = %q, want %q", tt.width, got, tt.want)
		}
	}
}
