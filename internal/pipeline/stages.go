package pipeline

import (
	"context"
	"errors"
)

// ErrPlaceholderLeak indicates a protected-span placeholder survived
// restoration. This is a programming invariant violation, never a manuscript
// error, and aborts the build.
var ErrPlaceholderLeak = errors.New("protected-span placeholder leaked into output")

// Context carries the per-build state shared by the element converters:
// the label registry, the warning list, and the Protector store. A fresh
// Context is created for every document build, so concurrent builds share
// nothing.
type Context struct {
	Labels   *LabelRegistry
	Warnings *WarningList
	Store    *Store

	// Supplementary selects the supplementary-document conventions:
	// stable/sidewaystable environments and a page break after each float.
	Supplementary bool

	// FigureDir is the directory generated figures are resolved into.
	// The FIGURES/ source prefix in figure paths is rewritten to it.
	FigureDir string
}

// NewContext returns a Context with an empty registry and warning list.
func NewContext() *Context {
	warnings := &WarningList{}
	return &Context{
		Labels:    NewLabelRegistry(warnings),
		Warnings:  warnings,
		Store:     &Store{},
		FigureDir: "Figures",
	}
}

// Stage is one named element converter. Convert takes protected text in and
// returns protected text out; it must be idempotent given its own output.
type Stage struct {
	Name    string
	Convert func(text string, ctx *Context) string
}

// Stages returns the element converter sequence, in dependency order. Later
// stages assume earlier ones already normalized or protected their targets:
// figures and tables consume attribute blocks before the inline pass can
// touch the asterisks in captions, citations run after cross-reference
// targets were emitted as \ref commands, and so on.
func Stages() []Stage {
	return []Stage{
		{Name: "HEADERS", Convert: convertHeaders},
		{Name: "NOTES", Convert: convertSupplementaryNotes},
		{Name: "FIGURES", Convert: convertFigures},
		{Name: "TABLES", Convert: convertTables},
		{Name: "INLINE_FORMATTING", Convert: convertInlineFormatting},
		{Name: "LISTS", Convert: convertLists},
		{Name: "LINKS", Convert: convertLinks},
		{Name: "CITATIONS", Convert: convertCitations},
		{Name: "CROSS_REFS", Convert: convertCrossReferences},
		{Name: "PAGE_BREAKS", Convert: convertPageBreaks},
		{Name: "COMMENTS", Convert: convertComments},
	}
}

// Run drives the full pipeline for one document: PROTECT, the element
// converter stages, then RESTORE exactly once, regardless of how many
// warnings the stages recorded. The context is checked between stages for
// cancellation.
func Run(ctx context.Context, text string, pctx *Context) (string, error) {
	// PROTECT: convert code fences and attributed equations first, then
	// hide everything syntax-sensitive.
	text = convertCodeBlocks(text, pctx)
	text = convertAttributedMath(text, pctx)
	text, store := Protect(text)
	pctx.Store = store

	for _, stage := range Stages() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text = stage.Convert(text, pctx)
	}

	// RESTORE
	text = store.Restore(text)
	if HasPlaceholder(text) {
		return "", ErrPlaceholderLeak
	}
	return text, nil
}
