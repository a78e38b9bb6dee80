package md2tex

import (
	"context"
	"fmt"
	"regexp"

	"github.com/alnah/go-md2tex/internal/pipeline"
)

// Precompiled regex patterns for preprocessing.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Converter orchestrates the Markdown-to-LaTeX conversion pipeline.
// A Converter is stateless between calls; every Convert builds a fresh label
// registry and warning list, so one Converter may serve concurrent builds.
type Converter struct {
	cfg converterConfig
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithFigureDir).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{figureDir: defaultFigureDir},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert runs the full pipeline and returns the LaTeX fragment together
// with the warnings collected along the way. The context is used for
// cancellation between pipeline stages.
func (c *Converter) Convert(ctx context.Context, input Input) (*Result, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	pctx := pipeline.NewContext()
	pctx.Supplementary = input.Supplementary
	pctx.FigureDir = c.cfg.figureDir

	text := normalizeLineEndings(input.Markdown)
	latex, err := pipeline.Run(ctx, text, pctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}

	return &Result{
		LaTeX:    latex,
		Warnings: publicWarnings(pctx.Warnings.All()),
	}, nil
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// publicWarnings converts internal warnings to the public type.
func publicWarnings(ws []pipeline.Warning) []Warning {
	out := make([]Warning, len(ws))
	for i, w := range ws {
		out[i] = Warning{
			Line:     w.Line,
			Category: w.Category,
			Severity: w.Severity,
			Message:  w.Message,
			Fix:      w.Fix,
		}
	}
	return out
}
