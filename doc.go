// Package md2tex converts extended-Markdown scientific manuscripts to LaTeX.
//
// # Quick Start
//
// Create a converter and convert a manuscript body:
//
//	conv := md2tex.NewConverter()
//	result, err := conv.Convert(ctx, md2tex.Input{Markdown: body})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(result.LaTeX)
//	for _, w := range result.Warnings {
//		fmt.Fprintln(os.Stderr, w)
//	}
//
// The output is a LaTeX fragment containing only body content, suitable for
// inclusion into a template that supplies the document class, packages, and
// front matter. Conversion is deterministic: re-running it on unchanged
// input produces byte-identical output.
//
// # Warnings
//
// Malformed manuscript content never fails a conversion. Unparseable
// constructs pass through unmodified and are reported in Result.Warnings;
// callers that want strict builds can treat a non-empty warning list as an
// error. Convert returns an error only for genuinely exceptional conditions
// (empty input, cancellation, internal invariant violations).
//
// # Supplementary documents
//
// Input.Supplementary selects supplementary-material conventions: page
// breaks after floats, stable/sidewaystable environments, and automatic
// "Supplementary Note N" numbering with snote: reference labels.
package md2tex
